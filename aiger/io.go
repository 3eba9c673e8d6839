// SPDX-License-Identifier: MIT
//
// File: io.go
// Role: AIGER ASCII ("aag") and binary ("aig") read/write. There is no
// third-party Go AIGER library anywhere in the reference corpus or the
// wider ecosystem (see DESIGN.md) so this module carries its own minimal
// codec rather than depend on a nonexistent import; everything downstream
// of Read/Write only ever sees the typed AIG view in types.go.
package aiger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadFile reads path, choosing the ASCII or binary codec by its leading
// "aag"/"aig" magic bytes rather than by file extension (both ".aag" and
// ".aig" occur in the wild for either format). An AIG that is not
// reencoded is still returned, together with an error wrapping
// ErrNotReencoded.
func ReadFile(path string) (*AIG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("aiger: open %s: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	magic, err := br.Peek(3)
	if err != nil {
		return nil, fmt.Errorf("aiger: %s: %w", path, ErrTruncated)
	}

	var a *AIG
	if string(magic) == "aag" {
		a, err = ReadASCII(br)
	} else if string(magic[:3]) == "aig" {
		a, err = ReadBinary(br)
	} else {
		return nil, fmt.Errorf("aiger: %s: %w", path, ErrMalformedHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("aiger: %s: %w", path, err)
	}
	return a, nil
}

// WriteFile writes aig to path in ASCII form when path ends in ".aag", and
// binary form otherwise (the conventional ".aig" meaning).
func WriteFile(path string, aig *AIG) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("aiger: create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if strings.HasSuffix(path, ".aag") {
		err = WriteASCII(bw, aig)
	} else {
		err = WriteBinary(bw, aig)
	}
	if err != nil {
		return fmt.Errorf("aiger: %s: %w", path, err)
	}
	return bw.Flush()
}

// header holds the nine counts of the AIGER header line "aag/aig M I L O A B C J F".
type header struct {
	maxVar, inputs, latches, outputs, ands, bad, constraints, justice, fairness int
}

func parseHeader(line, magic string) (header, error) {
	fields := strings.Fields(line)
	if len(fields) < 6 || fields[0] != magic {
		return header{}, ErrMalformedHeader
	}
	nums := make([]int, len(fields)-1)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return header{}, ErrMalformedHeader
		}
		nums[i] = n
	}
	h := header{maxVar: nums[0], inputs: nums[1], latches: nums[2], outputs: nums[3], ands: nums[4]}
	if len(nums) > 5 {
		h.bad = nums[5]
	}
	if len(nums) > 6 {
		h.constraints = nums[6]
	}
	if len(nums) > 7 {
		h.justice = nums[7]
	}
	if len(nums) > 8 {
		h.fairness = nums[8]
	}
	return h, nil
}

// ReadASCII parses the AIGER ASCII ("aag") format from r.
func ReadASCII(r io.Reader) (*AIG, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !sc.Scan() {
		return nil, ErrTruncated
	}
	h, err := parseHeader(sc.Text(), "aag")
	if err != nil {
		return nil, err
	}

	a := &AIG{MaxVar: uint32(h.maxVar), Symbols: map[Lit]string{}}
	readLit := func() (Lit, error) {
		if !sc.Scan() {
			return 0, ErrTruncated
		}
		n, err := strconv.ParseUint(strings.TrimSpace(sc.Text()), 10, 32)
		if err != nil {
			return 0, ErrBadLiteral
		}
		return Lit(n), nil
	}

	for i := 0; i < h.inputs; i++ {
		l, err := readLit()
		if err != nil {
			return nil, err
		}
		a.Inputs = append(a.Inputs, Symbol{Lit: l})
	}
	for i := 0; i < h.latches; i++ {
		if !sc.Scan() {
			return nil, ErrTruncated
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			return nil, ErrBadLiteral
		}
		lit, err1 := strconv.ParseUint(fields[0], 10, 32)
		next, err2 := strconv.ParseUint(fields[1], 10, 32)
		if err1 != nil || err2 != nil {
			return nil, ErrBadLiteral
		}
		reset := uint64(0) // default: reset to false when the field is omitted
		if len(fields) >= 3 {
			reset, err2 = strconv.ParseUint(fields[2], 10, 32)
			if err2 != nil {
				return nil, ErrBadLiteral
			}
		}
		a.Latches = append(a.Latches, Latch{Lit: Lit(lit), Next: Lit(next), Reset: Lit(reset)})
	}
	for i := 0; i < h.outputs; i++ {
		l, err := readLit()
		if err != nil {
			return nil, err
		}
		a.Outputs = append(a.Outputs, Symbol{Lit: l})
	}
	for i := 0; i < h.bad; i++ {
		l, err := readLit()
		if err != nil {
			return nil, err
		}
		a.Bad = append(a.Bad, Symbol{Lit: l})
	}
	for i := 0; i < h.constraints; i++ {
		l, err := readLit()
		if err != nil {
			return nil, err
		}
		a.Constraints = append(a.Constraints, Symbol{Lit: l})
	}
	for i := 0; i < h.justice; i++ {
		if !sc.Scan() {
			return nil, ErrTruncated
		}
		n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil || n < 0 {
			return nil, ErrBadLiteral
		}
		lits := make([]Lit, n)
		for j := 0; j < n; j++ {
			l, err := readLit()
			if err != nil {
				return nil, err
			}
			lits[j] = l
		}
		a.Justice = append(a.Justice, lits)
	}
	for i := 0; i < h.fairness; i++ {
		l, err := readLit()
		if err != nil {
			return nil, err
		}
		a.Fairness = append(a.Fairness, Symbol{Lit: l})
	}
	for i := 0; i < h.ands; i++ {
		if !sc.Scan() {
			return nil, ErrTruncated
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 3 {
			return nil, ErrBadLiteral
		}
		out, e1 := strconv.ParseUint(fields[0], 10, 32)
		x, e2 := strconv.ParseUint(fields[1], 10, 32)
		y, e3 := strconv.ParseUint(fields[2], 10, 32)
		if e1 != nil || e2 != nil || e3 != nil {
			return nil, ErrBadLiteral
		}
		a.Ands = append(a.Ands, And{Out: Lit(out), X: Lit(x), Y: Lit(y)})
	}

	// Symbol table and comments: "i<idx> name" / "l<idx> name" / "o<idx>
	// name" / "b<idx> name" / "j<idx> name" / "f<idx> name", then a lone
	// "c" line followed by free-form comments to EOF.
	for sc.Scan() {
		line := sc.Text()
		if line == "c" {
			break
		}
		if len(line) == 0 {
			continue
		}
		kind := line[0]
		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			continue
		}
		idx, err := strconv.Atoi(line[1:sp])
		if err != nil {
			continue
		}
		name := line[sp+1:]
		var lit Lit
		switch kind {
		case 'i':
			if idx >= len(a.Inputs) {
				continue
			}
			lit = a.Inputs[idx].Lit
			a.Inputs[idx].Name = name
		case 'l':
			if idx >= len(a.Latches) {
				continue
			}
			lit = a.Latches[idx].Lit
		case 'o':
			if idx >= len(a.Outputs) {
				continue
			}
			lit = a.Outputs[idx].Lit
			a.Outputs[idx].Name = name
		case 'b':
			if idx >= len(a.Bad) {
				continue
			}
			lit = a.Bad[idx].Lit
			a.Bad[idx].Name = name
		default:
			continue
		}
		a.Symbols[lit] = name
	}
	for sc.Scan() {
		a.Comments = append(a.Comments, sc.Text())
	}
	if !a.Reencoded() {
		return a, ErrNotReencoded
	}
	return a, nil
}

// WriteASCII writes aig to w in AIGER ASCII form.
func WriteASCII(w io.Writer, aig *AIG) error {
	bw := bufio.NewWriter(w)
	_, err := fmt.Fprintf(bw, "aag %d %d %d %d %d %d %d %d %d\n",
		aig.MaxVar, len(aig.Inputs), len(aig.Latches), len(aig.Outputs), len(aig.Ands),
		len(aig.Bad), len(aig.Constraints), len(aig.Justice), len(aig.Fairness))
	if err != nil {
		return err
	}
	for _, in := range aig.Inputs {
		fmt.Fprintf(bw, "%d\n", in.Lit)
	}
	for _, lt := range aig.Latches {
		fmt.Fprintf(bw, "%d %d %d\n", lt.Lit, lt.Next, lt.Reset)
	}
	for _, o := range aig.Outputs {
		fmt.Fprintf(bw, "%d\n", o.Lit)
	}
	for _, b := range aig.Bad {
		fmt.Fprintf(bw, "%d\n", b.Lit)
	}
	for _, c := range aig.Constraints {
		fmt.Fprintf(bw, "%d\n", c.Lit)
	}
	for _, j := range aig.Justice {
		fmt.Fprintf(bw, "%d\n", len(j))
		for _, l := range j {
			fmt.Fprintf(bw, "%d\n", l)
		}
	}
	for _, f := range aig.Fairness {
		fmt.Fprintf(bw, "%d\n", f.Lit)
	}
	for _, g := range aig.Ands {
		fmt.Fprintf(bw, "%d %d %d\n", g.Out, g.X, g.Y)
	}
	for i, in := range aig.Inputs {
		if in.Name != "" {
			fmt.Fprintf(bw, "i%d %s\n", i, in.Name)
		}
	}
	for i, o := range aig.Outputs {
		if o.Name != "" {
			fmt.Fprintf(bw, "o%d %s\n", i, o.Name)
		}
	}
	for i, b := range aig.Bad {
		if b.Name != "" {
			fmt.Fprintf(bw, "b%d %s\n", i, b.Name)
		}
	}
	if len(aig.Comments) > 0 {
		fmt.Fprintln(bw, "c")
		for _, c := range aig.Comments {
			fmt.Fprintln(bw, c)
		}
	}
	return bw.Flush()
}

// ReadBinary parses the AIGER binary ("aig") format: the header and
// input/latch/output/bad/constraint/justice/fairness sections are textual
// exactly as in ReadASCII, but AND gates are delta-encoded.
func ReadBinary(r io.Reader) (*AIG, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil {
		return nil, ErrTruncated
	}
	h, err := parseHeader(strings.TrimRight(line, "\n"), "aig")
	if err != nil {
		return nil, err
	}

	a := &AIG{MaxVar: uint32(h.maxVar), Symbols: map[Lit]string{}}
	// In binary format, input literals are NOT listed (they are implicitly
	// 2..2*numInputs); latches list only next (and optional reset).
	nextVar := Lit(2)
	for i := 0; i < h.inputs; i++ {
		a.Inputs = append(a.Inputs, Symbol{Lit: nextVar})
		nextVar += 2
	}
	for i := 0; i < h.latches; i++ {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, ErrTruncated
		}
		fields := strings.Fields(line)
		if len(fields) < 1 {
			return nil, ErrBadLiteral
		}
		next, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, ErrBadLiteral
		}
		reset := uint64(0)
		if len(fields) >= 2 {
			reset, err = strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return nil, ErrBadLiteral
			}
		}
		a.Latches = append(a.Latches, Latch{Lit: nextVar, Next: Lit(next), Reset: Lit(reset)})
		nextVar += 2
	}
	readLitLine := func() (Lit, error) {
		line, err := br.ReadString('\n')
		if err != nil {
			return 0, ErrTruncated
		}
		n, err := strconv.ParseUint(strings.TrimSpace(line), 10, 32)
		if err != nil {
			return 0, ErrBadLiteral
		}
		return Lit(n), nil
	}
	for i := 0; i < h.outputs; i++ {
		l, err := readLitLine()
		if err != nil {
			return nil, err
		}
		a.Outputs = append(a.Outputs, Symbol{Lit: l})
	}
	for i := 0; i < h.bad; i++ {
		l, err := readLitLine()
		if err != nil {
			return nil, err
		}
		a.Bad = append(a.Bad, Symbol{Lit: l})
	}
	for i := 0; i < h.constraints; i++ {
		l, err := readLitLine()
		if err != nil {
			return nil, err
		}
		a.Constraints = append(a.Constraints, Symbol{Lit: l})
	}
	for i := 0; i < h.justice; i++ {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, ErrTruncated
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, ErrBadLiteral
		}
		lits := make([]Lit, n)
		for j := 0; j < n; j++ {
			l, err := readLitLine()
			if err != nil {
				return nil, err
			}
			lits[j] = l
		}
		a.Justice = append(a.Justice, lits)
	}
	for i := 0; i < h.fairness; i++ {
		l, err := readLitLine()
		if err != nil {
			return nil, err
		}
		a.Fairness = append(a.Fairness, Symbol{Lit: l})
	}
	for i := 0; i < h.ands; i++ {
		d0, err := decodeDelta(br)
		if err != nil {
			return nil, err
		}
		d1, err := decodeDelta(br)
		if err != nil {
			return nil, err
		}
		out := nextVar
		x := Lit(int64(out) - int64(d0))
		y := Lit(int64(x) - int64(d1))
		a.Ands = append(a.Ands, And{Out: out, X: x, Y: y})
		nextVar += 2
	}
	if !a.Reencoded() {
		return a, ErrNotReencoded
	}
	return a, nil
}

// WriteBinary writes aig in AIGER binary form: AND gates delta-encoded,
// everything else textual, matching ReadBinary.
func WriteBinary(w io.Writer, aig *AIG) error {
	bw := bufio.NewWriter(w)
	_, err := fmt.Fprintf(bw, "aig %d %d %d %d %d %d %d %d %d\n",
		aig.MaxVar, len(aig.Inputs), len(aig.Latches), len(aig.Outputs), len(aig.Ands),
		len(aig.Bad), len(aig.Constraints), len(aig.Justice), len(aig.Fairness))
	if err != nil {
		return err
	}
	for _, lt := range aig.Latches {
		fmt.Fprintf(bw, "%d %d\n", lt.Next, lt.Reset)
	}
	for _, o := range aig.Outputs {
		fmt.Fprintf(bw, "%d\n", o.Lit)
	}
	for _, b := range aig.Bad {
		fmt.Fprintf(bw, "%d\n", b.Lit)
	}
	for _, c := range aig.Constraints {
		fmt.Fprintf(bw, "%d\n", c.Lit)
	}
	for _, j := range aig.Justice {
		fmt.Fprintf(bw, "%d\n", len(j))
		for _, l := range j {
			fmt.Fprintf(bw, "%d\n", l)
		}
	}
	for _, f := range aig.Fairness {
		fmt.Fprintf(bw, "%d\n", f.Lit)
	}
	for _, g := range aig.Ands {
		encodeDelta(bw, uint32(int64(g.Out)-int64(g.X)))
		encodeDelta(bw, uint32(int64(g.X)-int64(g.Y)))
	}
	return bw.Flush()
}

// encodeDelta writes v as an AIGER binary-format variable-length unsigned
// integer (7 bits per byte, high bit set on all but the last byte).
func encodeDelta(w *bufio.Writer, v uint32) {
	for v&^0x7f != 0 {
		w.WriteByte(byte(v&0x7f) | 0x80)
		v >>= 7
	}
	w.WriteByte(byte(v))
}

func decodeDelta(r *bufio.Reader) (uint32, error) {
	var v uint32
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, ErrTruncated
		}
		v |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, nil
		}
		shift += 7
	}
}
