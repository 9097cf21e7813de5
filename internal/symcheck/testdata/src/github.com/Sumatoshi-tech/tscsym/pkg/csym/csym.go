package csym

type Symbol uint16

type FieldID uint16

func Kind(name string) Symbol { return 0 }

func Keyword(name string) Symbol { return 0 }

func Field(name string) FieldID { return 0 }
