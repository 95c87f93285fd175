/*
STL Containers

Generic sequence containers written from scratch: a fixed length array,
a doubly linked list, a dynamic array (vector), stack and queue adapters
and a red-black tree. None of them is built on container/list, append
driven growth or the sort package; every block of storage comes from a
pluggable allocation strategy.

The major components of this project:

1. alloc - typed allocators (heap, free list, budgeted, metered) and the
Strategy that containers rebind to whatever they store.

2. buffer - the contiguous storage block shared by vector and array, with
random access iterators.

3. vector - growable contiguous sequence with exact Reserve and doubling
PushBack.

4. list - doubly linked list over a sentinel ring. Splice, merge, a
stable merge sort, unique and reverse only relink nodes.

5. rbtree - red-black tree with insertion and deletion fixups.

6. array, stack, queue - adapters.

7. errors - the out of range and allocation failure kinds, each error
carrying a stack trace.

8. stl-bench - a command that drives workloads over every container.

*/
package containers
