package grid

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTo writes the grid as a PLUMED style text grid: a "#!" header
// carrying the fields and the domain, then one line per cell holding the
// coordinate, the value and the derivative.
func (g *Grid) WriteTo(w io.Writer) (n int64, err error) {
	var (
		buf   bytes.Buffer
		label = g.Labels[0]
	)
	fmt.Fprintf(&buf, "#! FIELDS %s %s der_%s\n", label, g.Name, label)
	fmt.Fprintf(&buf, "#! SET min_%s %v\n", label, g.Min)
	fmt.Fprintf(&buf, "#! SET max_%s %v\n", label, g.Max)
	fmt.Fprintf(&buf, "#! SET nbins_%s %d\n", label, g.NBins)
	fmt.Fprintf(&buf, "#! SET periodic_%s %v\n", label, g.Periodic)
	for i := 0; i < g.NBins; i++ {
		fmt.Fprintf(&buf, "%23.16e %23.16e %23.16e\n", g.Point(i), g.values[i], g.derivs[i])
	}
	return buf.WriteTo(w)
}

// ReadGrid parses the text layout produced by WriteTo
func ReadGrid(r io.Reader) (g *Grid, err error) {
	var (
		scanner          = bufio.NewScanner(r)
		name, label      string
		min, max         float64
		nbins            int
		periodic         bool
		rows             [][3]float64
		haveMin, haveMax bool
		lineNo           int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "#!" {
			if len(fields) < 2 {
				continue
			}
			switch fields[1] {
			case "FIELDS":
				if len(fields) != 5 {
					return nil, fmt.Errorf("line %d: expected 3 fields, got %q", lineNo, line)
				}
				label, name = fields[2], fields[3]
			case "SET":
				if len(fields) != 4 {
					return nil, fmt.Errorf("line %d: malformed SET %q", lineNo, line)
				}
				key, val := fields[2], fields[3]
				switch key {
				case "min_" + label:
					min, err = strconv.ParseFloat(val, 64)
					haveMin = true
				case "max_" + label:
					max, err = strconv.ParseFloat(val, 64)
					haveMax = true
				case "nbins_" + label:
					nbins, err = strconv.Atoi(val)
				case "periodic_" + label:
					periodic, err = strconv.ParseBool(val)
				}
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 columns, got %d", lineNo, len(fields))
		}
		var row [3]float64
		for i, f := range fields {
			if row[i], err = strconv.ParseFloat(f, 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
		rows = append(rows, row)
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if len(label) == 0 || !haveMin || !haveMax {
		return nil, fmt.Errorf("incomplete grid header")
	}
	if len(rows) != nbins {
		return nil, fmt.Errorf("grid %q: header declares %d bins, found %d rows", name, nbins, len(rows))
	}
	if g, err = NewGrid(name, []string{label}, min, max, nbins, periodic); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err = g.SetValueAndDerivatives(i, row[1], row[2:]); err != nil {
			return nil, err
		}
	}
	return
}
