package browser

var listHints = []string{
	"/: search",
	"tab: region",
	"t: theme",
	"enter: details",
	"?: help",
	"q: quit",
}

var detailHints = []string{
	"↑/↓: previous/next",
	"y: copy name",
	"esc: back",
	"q: quit",
}

type helpSection struct {
	title    string
	bindings [][2]string
}

var keyHelp = []helpSection{
	{
		title: "Filtering",
		bindings: [][2]string{
			{"/", "Focus the search box"},
			{"esc, enter", "Leave the search box"},
			{"ctrl+u", "Clear the search"},
			{"tab, shift+tab", "Next / previous region"},
			{"0", "Show all regions"},
		},
	},
	{
		title: "Navigation",
		bindings: [][2]string{
			{"↑/↓, k/j", "Move up/down"},
			{"pgup, pgdown", "Move a page"},
			{"home, end", "First / last country"},
			{"enter", "Show country details"},
			{"y", "Copy country name"},
		},
	},
	{
		title: "General",
		bindings: [][2]string{
			{"t", "Toggle light/dark theme"},
			{"?", "Toggle this help"},
			{"q, ctrl+c", "Quit"},
		},
	},
}
