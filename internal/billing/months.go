package billing

// Months is the fixed ordered list of month names used both as display labels
// and as chronological keys: the slice index is the 0-based month index.
var Months = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril",
	"Maio", "Junho", "Julho", "Agosto",
	"Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthIndex returns the 0-based index of a month name, or -1 when the name
// is not one of the twelve known months.
func MonthIndex(name string) int {
	for i, m := range Months {
		if m == name {
			return i
		}
	}
	return -1
}
