// Command ulc is the file-based front end for the ulc columnar log
// compressor: compress, decompress, and info subcommands over the variant
// registry in the root ulc package.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/JanBremec/ULC-Compression"
	"github.com/JanBremec/ULC-Compression/column"
	"github.com/JanBremec/ULC-Compression/errs"
	"github.com/JanBremec/ULC-Compression/format"
	"github.com/JanBremec/ULC-Compression/wire"
)

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	input := os.Args[2]
	output := flagValue(os.Args[3:], "-o")

	var err error
	switch cmd {
	case "compress":
		err = runCompress(input, output)
	case "decompress":
		err = runDecompress(input, output)
	case "info":
		err = runInfo(input)
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		log.Println("ulc:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  ulc compress   <input> [-o <output>]")
	fmt.Fprintln(os.Stderr, "  ulc decompress <input> [-o <output>]")
	fmt.Fprintln(os.Stderr, "  ulc info       <input>")
}

func flagValue(args []string, name string) string {
	for i, a := range args {
		if a == name && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func runCompress(input, output string) error {
	lines, err := readLines(input)
	if err != nil {
		return err
	}

	fmt.Printf("read %d lines from %s\n", len(lines), input)

	result, err := ulc.CompressAuto(lines)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	for _, w := range result.Warnings {
		fmt.Println("warning:", w)
	}

	if output == "" {
		output = input + variantExtension(result.Variant)
	}

	if err := os.WriteFile(output, result.Data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Printf("wrote %s (variant %s, %d bytes, %d lines)\n", output, result.Variant, len(result.Data), len(lines))
	return nil
}

func runDecompress(input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	lines, err := ulc.Decompress(data)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}

	if output == "" {
		output = stripVariantExtension(input)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrOutputOpen, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Printf("wrote %s (%d lines)\n", output, len(lines))
	return nil
}

// runInfo decompresses a file and prints its variant and line count. For
// Variant S/U files it also prints the column count and, per column, the
// tag column.SelectTag picks for the decompressed values and the
// distinct-value count; the columns are rebuilt from the decompressed
// name=value lines, not read from the stored body. Variant H files get the
// variant and line count only.
func runInfo(input string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	v, err := wire.VariantFromMagic(data)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	lines, err := ulc.Decompress(data)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	fmt.Printf("variant: %s\n", v)
	fmt.Printf("lines: %d\n", len(lines))

	if v == format.VariantH {
		// Positional columns have no stable name to report per-column stats
		// against; report the aggregate only.
		return nil
	}

	return printNamedColumnStats(lines)
}

func printNamedColumnStats(lines []string) error {
	named := columnizeForInfo(lines)
	fmt.Printf("columns: %d\n", len(named))

	for _, c := range named {
		st := column.Analyze(c.values)
		tag := column.SelectTag(c.values)
		fmt.Printf("  %-20s tag=%-5s distinct=%d\n", c.name, tag, st.Distinct)
	}

	return nil
}

type namedColumn struct {
	name   string
	values []string
}

// columnizeForInfo rebuilds name=value columns from the flattened
// "name=value name=value ..." lines Decompress produces for S/U, since
// info works from the already-decompressed line view rather than holding
// onto the wire-level grid.
func columnizeForInfo(lines []string) []namedColumn {
	order := make([]string, 0)
	index := make(map[string]int)
	cols := make([][]string, 0)

	for ri, line := range lines {
		for _, field := range strings.Fields(line) {
			name, value, ok := strings.Cut(field, "=")
			if !ok {
				continue
			}

			i, seen := index[name]
			if !seen {
				i = len(order)
				index[name] = i
				order = append(order, name)
				cols = append(cols, make([]string, len(lines)))
			}
			if ri < len(cols[i]) {
				cols[i][ri] = value
			}
		}
	}

	out := make([]namedColumn, len(order))
	for i, name := range order {
		out[i] = namedColumn{name: name, values: cols[i]}
	}
	return out
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInputOpen, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return lines, nil
}

func variantExtension(v format.Variant) string {
	switch v {
	case format.VariantU:
		return ".ulcu"
	case format.VariantH:
		return ".ulch"
	default:
		return ".ulc"
	}
}

func stripVariantExtension(path string) string {
	for _, ext := range []string{".ulc", ".ulcu", ".ulch"} {
		if strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext)
		}
	}
	return path + ".decompressed"
}
