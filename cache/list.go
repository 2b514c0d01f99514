package cache

// node is a node in a doubly-linked recency list.
// The node stores a key for O(1) deletion from the parent map.
type node[K comparable] struct {
	key  K
	prev *node[K]
	next *node[K]
}

// list is a doubly-linked list tracking recency order.
// The list is not thread-safe; callers must handle synchronization.
//
// The head is the most recently used, tail is least recently used.
type list[K comparable] struct {
	head *node[K]
	tail *node[K]
	len  int
}

// Len returns the number of nodes in the list.
func (l *list[K]) Len() int {
	return l.len
}

// PushFront adds a new node at the front (most recently used).
// Returns the created node for later access.
func (l *list[K]) PushFront(key K) *node[K] {
	n := &node[K]{key: key}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.len++
	return n
}

// MoveToFront moves an existing node to the front (most recently used).
func (l *list[K]) MoveToFront(n *node[K]) {
	if n == nil || n == l.head {
		return
	}

	l.unlink(n)

	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

// Remove removes a node from the list.
func (l *list[K]) Remove(n *node[K]) {
	if n == nil {
		return
	}
	l.unlink(n)
}

// RemoveOldest removes and returns the key of the least recently used node.
// Returns zero value and false if list is empty.
func (l *list[K]) RemoveOldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}

	n := l.tail
	l.unlink(n)
	return n.key, true
}

// Oldest returns the key of the least recently used node without removing it.
// Returns zero value and false if list is empty.
func (l *list[K]) Oldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	return l.tail.key, true
}

// Clear removes all nodes from the list.
func (l *list[K]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// unlink removes a node from the list without clearing the node's pointers.
// Used internally by Remove and MoveToFront.
func (l *list[K]) unlink(n *node[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.prev = nil
	n.next = nil
	l.len--
}
