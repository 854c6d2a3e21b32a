package decompose

import "fmt"

// layoutLabels maps IDS structural operators to human-readable spatial
// phrases. The mirror/rotate/variation marks (⿾⿿〾 and the newer ⿼⿽) get
// no label and yield an empty layout.
var layoutLabels = map[rune]string{
	'⿰': "left-right",
	'⿱': "top-bottom",
	'⿲': "left-mid-right",
	'⿳': "top-mid-bottom",
	'⿴': "surround",
	'⿵': "surround-open-bottom",
	'⿶': "surround-open-top",
	'⿷': "surround-open-right",
	'⿸': "top-left-wrap",
	'⿹': "top-right-wrap",
	'⿺': "bottom-left-wrap",
	'⿻': "overlaid",
}

// LayoutLabel returns the human-readable phrase for an IDS operator, or
// empty when the operator carries no spatial meaning.
func LayoutLabel(op rune) string {
	return layoutLabels[op]
}

// TopLevelLayout returns the spatial-layout label for a character, derived
// from the leading operator of its first IDS sequence, e.g. "⿴ (surround)".
// Empty when the character has no IDS or its sequence does not start with a
// labeled operator.
func (d *Decomposer) TopLevelLayout(char string) string {
	cleaned := d.Table.CleanFirst(char)
	if cleaned == "" {
		return ""
	}
	first := []rune(cleaned)[0]
	label, ok := layoutLabels[first]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%c (%s)", first, label)
}
