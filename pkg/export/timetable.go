package export

import "strings"

// GridDataset flattens a timetable grid into a tabular dataset: one row
// per slot, one column per day, cell values joining occupant names in
// booking order.
func GridDataset(days, slots []string, grid map[string]map[string][]string) Dataset {
	headers := make([]string, 0, len(days)+1)
	headers = append(headers, "Time")
	headers = append(headers, days...)

	rows := make([]map[string]string, 0, len(slots))
	for _, slot := range slots {
		row := map[string]string{"Time": slot}
		for _, day := range days {
			row[day] = strings.Join(grid[day][slot], ", ")
		}
		rows = append(rows, row)
	}
	return Dataset{Headers: headers, Rows: rows}
}
