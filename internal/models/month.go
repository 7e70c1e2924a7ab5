package models

// Month is a calendar month label as stored on payment and expense rows.
// Labels are the three-letter Spanish abbreviations, January first.
type Month string

const (
	Enero      Month = "ENE"
	Febrero    Month = "FEB"
	Marzo      Month = "MAR"
	Abril      Month = "ABR"
	Mayo       Month = "MAY"
	Junio      Month = "JUN"
	Julio      Month = "JUL"
	Agosto     Month = "AGO"
	Septiembre Month = "SEP"
	Octubre    Month = "OCT"
	Noviembre  Month = "NOV"
	Diciembre  Month = "DIC"
)

// MonthLabels is the canonical ordered 12-month calendar.
var MonthLabels = [12]Month{
	Enero, Febrero, Marzo, Abril, Mayo, Junio,
	Julio, Agosto, Septiembre, Octubre, Noviembre, Diciembre,
}

// MonthIndex returns the zero-based calendar position of m,
// or -1 if m is not one of the canonical labels.
func MonthIndex(m Month) int {
	for i, label := range MonthLabels {
		if label == m {
			return i
		}
	}
	return -1
}

// IsValidMonth reports whether m is one of the canonical labels.
func IsValidMonth(m Month) bool {
	return MonthIndex(m) >= 0
}
