package topological

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

var ErrCycleDetected = errors.New("cycle detected")

func sortedKeys[M ~map[K]V, K constraints.Ordered, V any](m M) []K {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}

func Sort[T constraints.Ordered](values []T, depFunc func(T) []T) ([]T, error) {
	return SortFunc(values, func(val T) T { return val }, depFunc)
}

// SortFunc orders values so that every value comes after the values it
// depends on. Ties are broken by key so the result is deterministic.
// Dependencies outside of values are ignored.
func SortFunc[T any, K constraints.Ordered](values []T, keyFunc func(T) K, depFunc func(T) []T) ([]T, error) {
	valuesByKey := make(map[K]T, len(values))
	for _, val := range values {
		valuesByKey[keyFunc(val)] = val
	}

	dependencies := make(map[K]map[K]struct{})
	dependents := make(map[K]map[K]struct{})
	ready := make(map[K]struct{})

	for key, val := range valuesByKey {
		deps := make(map[K]struct{})
		for _, dep := range depFunc(val) {
			depKey := keyFunc(dep)
			if _, ok := valuesByKey[depKey]; ok {
				deps[depKey] = struct{}{}
			}
		}

		if len(deps) == 0 {
			ready[key] = struct{}{}
			continue
		}

		dependencies[key] = deps
		for dep := range deps {
			if dependents[dep] == nil {
				dependents[dep] = make(map[K]struct{})
			}
			dependents[dep][key] = struct{}{}
		}
	}

	queue := sortedKeys(ready)
	list := make([]T, 0, len(valuesByKey))

	for len(queue) > 0 {
		var key K
		key, queue = queue[0], queue[1:]
		list = append(list, valuesByKey[key])

		for _, dep := range sortedKeys(dependents[key]) {
			delete(dependencies[dep], key)
			if len(dependencies[dep]) == 0 {
				delete(dependencies, dep)
				queue = append(queue, dep)
			}
		}
	}

	if len(dependencies) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrCycleDetected, sortedKeys(dependencies))
	}

	return list, nil
}
