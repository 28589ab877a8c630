package alphabet

// sortEntries orders the lookup table by character using a stable top-down merge sort
func sortEntries(entries []entry) {
	if len(entries) < 2 {
		return
	}

	buffer := make([]entry, len(entries))
	mergeSortEntries(entries, buffer, 0, len(entries)-1)
}

func mergeSortEntries(entries []entry, buffer []entry, start int, end int) {
	if start >= end {
		return
	}

	mid := start + (end-start)/2
	mergeSortEntries(entries, buffer, start, mid)
	mergeSortEntries(entries, buffer, mid+1, end)
	mergeEntries(entries, buffer, start, mid, end)
}

func mergeEntries(entries []entry, buffer []entry, start int, mid int, end int) {
	left := start
	right := mid + 1
	k := start
	for left <= mid && right <= end {
		if entries[left].character <= entries[right].character {
			buffer[k] = entries[left]
			left++
		} else {
			buffer[k] = entries[right]
			right++
		}
		k++
	}

	k += copy(buffer[k:], entries[left:mid+1])
	copy(buffer[k:], entries[right:end+1])
	copy(entries[start:end+1], buffer[start:end+1])
}
