package utils

import "sort"

// ElementCount est une entrée d'un décompte d'occurrences.
type ElementCount struct {
	Element string
	Count   int
}

// CountByOccurrence compte chaque élément de la liste et retourne le décompte
// trié par occurrences décroissantes. Le tri est stable : à occurrences
// égales, l'ordre de première apparition est conservé.
func CountByOccurrence(elements []string) []ElementCount {
	counts := make(map[string]int, len(elements))
	order := make([]string, 0, len(elements))

	for _, element := range elements {
		if _, seen := counts[element]; !seen {
			order = append(order, element)
		}
		counts[element]++
	}

	counted := make([]ElementCount, 0, len(order))
	for _, element := range order {
		counted = append(counted, ElementCount{Element: element, Count: counts[element]})
	}

	sort.SliceStable(counted, func(i, j int) bool {
		return counted[i].Count > counted[j].Count
	})

	return counted
}
