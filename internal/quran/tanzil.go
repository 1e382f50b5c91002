package quran

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned when a Tanzil text line cannot be parsed.
var ErrMalformedLine = errors.New("malformed line")

// ParseTanzil reads verses in the Tanzil "sura|ayah|text" format.
// Blank lines and lines starting with '#' are skipped.
func ParseTanzil(r io.Reader) ([]Verse, error) {
	var verses []Verse

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		v, err := parseTanzilLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		verses = append(verses, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading verses: %w", err)
	}

	return verses, nil
}

func parseTanzilLine(line string) (Verse, error) {
	parts := strings.SplitN(line, "|", 3)
	if len(parts) != 3 {
		return Verse{}, fmt.Errorf("%w: expected sura|ayah|text", ErrMalformedLine)
	}

	sura, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Verse{}, fmt.Errorf("%w: sura %q", ErrMalformedLine, parts[0])
	}
	if !ValidSura(sura) {
		return Verse{}, fmt.Errorf("%w: %d", ErrInvalidSura, sura)
	}

	ayah, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Verse{}, fmt.Errorf("%w: ayah %q", ErrMalformedLine, parts[1])
	}
	if ayah < 1 || ayah > AyahCount(sura) {
		return Verse{}, fmt.Errorf("%w: ayah %d out of range for sura %d", ErrMalformedLine, ayah, sura)
	}

	return Verse{Sura: sura, Ayah: ayah, Text: strings.TrimSpace(parts[2])}, nil
}
