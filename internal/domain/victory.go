package domain

// VictoryTerm names a win by its margin. Margins outside 1..5 cannot occur in
// a finished match and yield an empty string.
func VictoryTerm(margin uint8) string {
	switch margin {
	case 1:
		return "Clinch"
	case 2:
		return "Hypnotization"
	case 3:
		return "Obliteration"
	case 4:
		return "Annihilation"
	case 5:
		return "Wipeout"
	default:
		return ""
	}
}
