// Package players provides the hitter and pitcher table features.
package players

// ViewOptions carries the current filter and sort state of a table page so
// header links and SSE updates can preserve it.
type ViewOptions struct {
	Path string
	Team string
	Sort string
	Desc bool
}

// column describes one table column. An empty key means the column is not
// sortable.
type column struct {
	key   string
	label string
	class string
}

var hitterColumns = []column{
	{"source_team", "Src", ""},
	{"pos", "Pos", ""},
	{"player", "Player", ""},
	{"team", "Team", ""},
	{"eligible", "Eligible", ""},
	{"status", "St", ""},
	{"age", "Age", "num"},
	{"opponent", "Opp", ""},
	{"salary", "Salary", "num"},
	{"contract", "Contract", ""},
	{"ab", "AB", "num"},
	{"h", "H", "num"},
	{"r", "R", "num"},
	{"hr", "HR", "num"},
	{"rbi", "RBI", "num"},
	{"sb", "SB", "num"},
	{"avg", "AVG", "num"},
	{"gp", "GP", "num"},
	{"price", "Price", "price"},
}

var pitcherColumns = []column{
	{"source_team", "Src", ""},
	{"pos", "Pos", ""},
	{"player", "Player", ""},
	{"team", "Team", ""},
	{"eligible", "Eligible", ""},
	{"status", "St", ""},
	{"age", "Age", "num"},
	{"opponent", "Opp", ""},
	{"salary", "Salary", "num"},
	{"contract", "Contract", ""},
	{"ip", "IP", "num"},
	{"w", "W", "num"},
	{"sv", "SV", "num"},
	{"k", "K", "num"},
	{"era", "ERA", "num"},
	{"whip", "WHIP", "num"},
	{"gp", "GP", "num"},
	{"price", "Price", "price"},
}
