package collection

import "maps"

// DeepMerge produces a new map combining a and b. When a key exists in both
// and both values are maps, they merge recursively; otherwise the value
// from b wins outright: slices are replaced wholesale, never merged
// element-wise. Neither input is mutated.
func DeepMerge(a, b map[string]any) map[string]any {
	result := make(map[string]any, len(a)+len(b))
	maps.Copy(result, a)

	for key, value := range b {
		existing, ok := result[key]
		if !ok {
			result[key] = value
			continue
		}

		existingMap, aIsMap := existing.(map[string]any)
		valueMap, bIsMap := value.(map[string]any)
		if aIsMap && bIsMap {
			result[key] = DeepMerge(existingMap, valueMap)
		} else {
			result[key] = value
		}
	}

	return result
}

// Pluck extracts the value for key from each map, marking missing keys as
// absent instead of filling in zero values.
func Pluck[V any](items []map[string]V, key string) []Optional[V] {
	result := make([]Optional[V], len(items))
	for i, item := range items {
		if v, ok := item[key]; ok {
			result[i] = Some(v)
		}
	}
	return result
}
