package styles

// Status markers used in command output.
var (
	IconCheck = "✔"
	IconCross = "✖"
)
