package walk

// Sample is the program used when no input is given.
const Sample = `#include <stdio.h>
#include <stdlib.h>

// A simple structure
typedef struct {
    int x;
    int y;
} Point;

struct node {
    int value;
    struct node *next;
};

// Function to create a new point
Point* create_point(int x, int y) {
    Point* p = (Point*)malloc(sizeof(Point));
    if (p == NULL) {
        return NULL;
    }
    p->x = x;
    p->y = y;
    return p;
}

// Function to calculate distance between points
double distance(Point* p1, Point* p2) {
    int dx = p2->x - p1->x;
    int dy = p2->y - p1->y;
    return sqrt(dx*dx + dy*dy);
}

int main() {
    Point* p1 = create_point(0, 0);
    Point* p2 = create_point(3, 4);

    if (p1 != NULL && p2 != NULL) {
        printf("Distance: %f\n", distance(p1, p2));
        free(p1);
        free(p2);
    } else {
        printf("Memory allocation failed\n");
        return 1;
    }

    return 0;
}
`
