package main

// Runway classification domain, in whole months of remaining stock. The two
// threshold handles move over this range and must stay strictly ordered.
const (
	runwayMin = 1
	runwayMax = 7
)

// Highlight threshold domain. Values snap to the step grid.
const (
	highlightMin  = 0.5
	highlightMax  = 6.0
	highlightStep = 0.5
)

// Moving-average window choices offered by the month selector.
var maMonthOptions = []int{1, 2, 3, 6, 12}

// Slider track widths in cells. Chosen so every domain value lands on its
// own cell: (dualTrackWidth-1) is divisible by runwayMax-runwayMin and
// (singleTrackWidth-1) by the number of highlight steps.
const (
	dualTrackWidth   = 25
	singleTrackWidth = 23
)

// Application/database settings.
const (
	appName    = "restock"
	dbFileName = "restock.db"
)
