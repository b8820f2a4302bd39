package dataset

import "tableflip.dev/downloads/pkg/tui/components/grid"

// Sample returns the built-in demo dataset.
func Sample() *Dataset {
	file := func(name, device, path, status string) grid.Row {
		return grid.NewRow("name", name, "device", device, "path", path, "status", status)
	}
	return &Dataset{
		Rows: []grid.Row{
			file("smss.exe", "Stark", `\Device\HarddiskVolume2\Windows\System32\smss.exe`, "scheduled"),
			file("netsh.exe", "Targaryen", `\Device\HarddiskVolume2\Windows\System32\netsh.exe`, "available"),
			file("uxtheme.dll", "Lannister", `\Device\HarddiskVolume1\Windows\System32\uxtheme.dll`, "available"),
			file("aries.sys", "Greyjoy", `\Device\HarddiskVolume1\Windows\System32\aries.sys`, "scheduled"),
			file("cryptbase.dll", "Martell", `\Device\HarddiskVolume1\Windows\System32\cryptbase.dll`, "scheduled"),
			file("7za.exe", "Baratheon", `\Device\HarddiskVolume1\temp\7za.exe`, "scheduled"),
		},
		Columns: []grid.Column{
			{Key: "name", Label: "Name"},
			{Key: "device", Label: "Device"},
			{Key: "path", Label: "Path"},
			{Key: "status", Label: "Status"},
		},
		Criteria: &grid.Criteria{Key: "status", Values: []any{"scheduled"}},
	}
}
