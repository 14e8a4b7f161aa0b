// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ManuGH/flatcfg/setting"
	"github.com/ManuGH/flatcfg/store"
)

// newSetting returns a freshly constructed variant for a type name. The
// defaults only seed the container; callers decode or parse over them.
func newSetting(typ string) (setting.Setting, error) {
	switch typ {
	case "char":
		return setting.NewChar('?'), nil
	case "string":
		return setting.NewString("?"), nil
	case "byte":
		return setting.NewByte(0), nil
	case "short":
		return setting.NewShort(0), nil
	case "ushort":
		return setting.NewUShort(0), nil
	case "int":
		return setting.NewInt(0), nil
	case "uint":
		return setting.NewUInt(0), nil
	case "long":
		return setting.NewLong(0), nil
	case "ulong":
		return setting.NewULong(0), nil
	case "float":
		return setting.NewFloat(0), nil
	case "double":
		return setting.NewDouble(0), nil
	case "decimal":
		return setting.NewDecimal(decimal.Zero), nil
	case "bool":
		return setting.NewBool(false), nil
	case "nfloat":
		return setting.NewNormFloat(0), nil
	case "ndouble":
		return setting.NewNormDouble(0), nil
	case "ndecimal":
		return setting.NewNormDecimal(decimal.Zero), nil
	}
	return nil, fmt.Errorf("unknown setting type %q", typ)
}

// parseInto parses raw according to the type name and assigns it through
// the setting's validity check.
func parseInto(s setting.Setting, typ, raw string) error {
	switch typ {
	case "char":
		runes := []rune(raw)
		if len(runes) != 1 {
			return fmt.Errorf("char value must be a single character")
		}
		return s.(*setting.Value[rune]).Set(runes[0])
	case "string":
		return s.(*setting.Value[string]).Set(raw)
	case "byte":
		v, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return err
		}
		return s.(*setting.Value[uint8]).Set(uint8(v))
	case "short":
		v, err := strconv.ParseInt(raw, 10, 16)
		if err != nil {
			return err
		}
		return s.(*setting.Value[int16]).Set(int16(v))
	case "ushort":
		v, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return err
		}
		return s.(*setting.Value[uint16]).Set(uint16(v))
	case "int":
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return err
		}
		return s.(*setting.Value[int32]).Set(int32(v))
	case "uint":
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return err
		}
		return s.(*setting.Value[uint32]).Set(uint32(v))
	case "long":
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		return s.(*setting.Value[int64]).Set(v)
	case "ulong":
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		return s.(*setting.Value[uint64]).Set(v)
	case "float", "nfloat":
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return err
		}
		return s.(*setting.Value[float32]).Set(float32(v))
	case "double", "ndouble":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		return s.(*setting.Value[float64]).Set(v)
	case "decimal", "ndecimal":
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return err
		}
		return s.(*setting.Value[decimal.Decimal]).Set(v)
	case "bool":
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		return s.(*setting.Value[bool]).Set(v)
	}
	return fmt.Errorf("unknown setting type %q", typ)
}

// readLines returns the raw lines of a store file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// --- cat ---

var catCmd = &cobra.Command{
	Use:   "cat <file>",
	Short: "List the entries of a store file with their raw value bytes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := readLines(args[0])
		if err != nil {
			return err
		}
		for _, line := range lines {
			name, value, found := strings.Cut(line, store.Delimiter)
			if !found {
				continue
			}
			data := store.Unescape(value)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d bytes\t%x\n", name, len(data), data)
		}
		return nil
	},
}

// --- get ---

var getCmd = &cobra.Command{
	Use:   "get <file> <name>",
	Short: "Decode one value from a store file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, _ := cmd.Flags().GetString("type")
		s, err := newSetting(typ)
		if err != nil {
			return err
		}

		lines, err := readLines(args[0])
		if err != nil {
			return err
		}
		for _, line := range lines {
			name, value, found := strings.Cut(line, store.Delimiter)
			if !found || name != args[1] {
				continue
			}
			if err := s.Decode(store.Unescape(value)); err != nil {
				return fmt.Errorf("decode %q as %s: %w", name, typ, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		}
		return fmt.Errorf("setting %q not found in %s", args[1], args[0])
	},
}

// --- set ---

var setCmd = &cobra.Command{
	Use:   "set <file> <name> <value>",
	Short: "Encode one value and rewrite its entry in a store file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, _ := cmd.Flags().GetString("type")
		s, err := newSetting(typ)
		if err != nil {
			return err
		}
		if err := parseInto(s, typ, args[2]); err != nil {
			return err
		}
		data, err := s.Encode()
		if err != nil {
			return err
		}

		lines, err := readLines(args[0])
		if err != nil {
			return err
		}
		replaced := false
		for i, line := range lines {
			name, _, found := strings.Cut(line, store.Delimiter)
			if !found || name != args[1] {
				continue
			}
			lines[i] = name + store.Delimiter + store.Escape(data)
			replaced = true
			break
		}
		if !replaced {
			return fmt.Errorf("setting %q not found in %s", args[1], args[0])
		}

		// Same atomic replace as a full save; other entries pass through
		// untouched.
		content := strings.Join(lines, "\n") + "\n"
		if err := renameio.WriteFile(args[0], []byte(content), 0o644); err != nil {
			return fmt.Errorf("rewrite store file: %w", err)
		}
		return nil
	},
}

func init() {
	getCmd.Flags().String("type", "string", "value type (char, string, byte, short, ushort, int, uint, long, ulong, float, double, decimal, bool, nfloat, ndouble, ndecimal)")
	setCmd.Flags().String("type", "string", "value type (see get --type)")
}
