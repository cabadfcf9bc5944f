package trace

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/shiftzeros/internal/algo"
)

var csvHeader = []string{"seq", "event", "from", "path", "to", "current", "zeros", "target", "list"}

// WriteCSV writes one row per record. Marked cells carry a trailing '*'.
func WriteCSV(w io.Writer, res *Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, rec := range res.Records {
		path := make([]string, len(rec.Path))
		for i, p := range rec.Path {
			path[i] = string(p)
		}
		row := []string{
			strconv.Itoa(rec.Seq),
			string(rec.Event),
			string(rec.From),
			strings.Join(path, ">"),
			string(rec.To()),
			strconv.Itoa(rec.After.Current),
			strconv.Itoa(rec.After.Zeros),
			strconv.Itoa(rec.After.Target),
			formatList(rec.After.List),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the whole result as indented JSON.
func WriteJSON(w io.Writer, res *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func formatList(list []algo.Cell) string {
	parts := make([]string, len(list))
	for i, c := range list {
		parts[i] = strconv.Itoa(c.Number)
		if c.MarkedAsZero {
			parts[i] += "*"
		}
	}
	return strings.Join(parts, " ")
}
