package present

// Language is the tokenizer tag of Source.
const Language = "go"

// Source is the listing shown next to the grid. Line indices in the
// highlight table refer to it, counting from zero.
const Source = `func swap(a, b int) func([]int) []int {
	return func(array []int) []int {
		temp := array[a]
		array[a] = array[b]
		array[b] = temp
		return array
	}
}

func shiftZerosLeft(array []int) []int {
	index := len(array) - 1
	zeros := 0

	for index >= 0 {
		if array[index] == 0 {
			zeros++
		} else if zeros > 0 {
			swap(index, index+zeros)(array)
		}
		// a non-zero with no zeros behind it stays put
		index--
	}

	return array
}`

// RealWorld is the library based alternative shown under the listing.
const RealWorld = `sort.SliceStable(base, func(i, j int) bool {
	return base[i] == 0 && base[j] != 0
})`

// Intro introduces the widget.
const Intro = "Given a list of numbers, move every 0 to the front while " +
	"keeping the order of the other numbers, in place and in a single pass " +
	"from right to left."
