package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/san-kum/hmcsim/internal/dynamo"
)

type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
	FormatCSV     Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatMsgpack, FormatCSV:
		return f, nil
	}
	return "", &dynamo.ArgumentError{Name: "format", Reason: fmt.Sprintf("unknown format %q (available: json, msgpack, csv)", s)}
}

type Point struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// Record is the structured form of a chain result handed to other runtimes.
type Record struct {
	Samples        []Point `json:"samples" msgpack:"samples"`
	AcceptanceRate float64 `json:"acceptance_rate" msgpack:"acceptance_rate"`
}

func NewRecord(res *dynamo.Result) Record {
	rec := Record{
		Samples:        make([]Point, len(res.Samples)),
		AcceptanceRate: res.AcceptanceRate,
	}
	for i, q := range res.Samples {
		rec.Samples[i] = Point{X: q.X, Y: q.Y}
	}
	return rec
}

// Pairs flattens the samples into (x, y) tuples.
func Pairs(res *dynamo.Result) [][2]float64 {
	out := make([][2]float64, len(res.Samples))
	for i, q := range res.Samples {
		out[i] = [2]float64{q.X, q.Y}
	}
	return out
}

func Write(w io.Writer, format Format, res *dynamo.Result) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatMsgpack:
		return WriteMsgpack(w, res)
	case FormatCSV:
		return WriteCSV(w, res)
	}
	return fmt.Errorf("export: unsupported format %q", format)
}

func WriteJSON(w io.Writer, res *dynamo.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewRecord(res))
}

func WriteMsgpack(w io.Writer, res *dynamo.Result) error {
	return msgpack.NewEncoder(w).Encode(NewRecord(res))
}

func ReadMsgpack(r io.Reader) (Record, error) {
	var rec Record
	err := msgpack.NewDecoder(r).Decode(&rec)
	return rec, err
}

func WriteCSV(w io.Writer, res *dynamo.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, xy := range Pairs(res) {
		row := []string{
			strconv.FormatFloat(xy[0], 'g', -1, 64),
			strconv.FormatFloat(xy[1], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
