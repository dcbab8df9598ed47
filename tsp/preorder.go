package tsp

import "fmt"

// PreorderCycle turns a parent-pointer tree into a closed Hamiltonian cycle by a
// pre-order walk from root, visiting children in ascending id order, and then
// appending root again.
//
// Steps:
//  1. Validate parent: root in range with no parent, every other entry in range and not itself.
//  2. Build child lists from parent once (ascending ids by construction).
//  3. Walk with an explicit stack seeded with root: if the top still has an
//     unvisited child, push it and append it to the path; otherwise pop.
//  4. If the path does not hold every vertex → ErrNotSpanning.
//  5. Append root to close the cycle.
//
// The result equals the naive walk that rescans the whole parent array for
// the lowest unvisited child of the top at every step; the child lists only
// remove the O(n²) rescans.
//
// Complexity: O(n) time, O(n) memory.
func PreorderCycle(parent []int, root int) ([]int, error) {
	n := len(parent)
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, root, n)
	}
	if parent[root] != NoParent {
		return nil, fmt.Errorf("%w: root %d has parent %d", ErrBadParent, root, parent[root])
	}

	children := make([][]int, n)
	for v, p := range parent {
		if v == root {
			continue
		}
		if p < 0 || p >= n || p == v {
			return nil, fmt.Errorf("%w: parent[%d]=%d", ErrBadParent, v, p)
		}
		children[p] = append(children[p], v)
	}

	path := make([]int, 0, n+1)
	next := make([]int, n) // next[v] indexes the next child of v to visit
	stack := newIndexStack(n)
	var (
		top int
		err error
	)
	path = append(path, root)
	if err = stack.push(root); err != nil {
		return nil, err
	}
	for !stack.isEmpty() {
		if top, err = stack.peek(); err != nil {
			return nil, err
		}
		if next[top] < len(children[top]) {
			child := children[top][next[top]]
			next[top]++
			if err = stack.push(child); err != nil {
				return nil, err
			}
			path = append(path, child)
			continue
		}
		if _, err = stack.pop(); err != nil {
			return nil, err
		}
	}

	if len(path) != n {
		return nil, fmt.Errorf("%w: reached %d of %d vertices", ErrNotSpanning, len(path), n)
	}

	return append(path, root), nil
}
