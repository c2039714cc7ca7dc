package automatic

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"lukechampine.com/frand"
)

// GenerateSeeds creates n random 32-byte board seeds.
func GenerateSeeds(n int) [][32]byte {
	seeds := make([][32]byte, n)
	for i := range seeds {
		frand.Read(seeds[i][:])
	}
	return seeds
}

// WriteSeeds writes seeds one per line, base64 URL-safe encoded.
func WriteSeeds(w io.Writer, seeds [][32]byte) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("# Board seeds (base64 URL-safe encoded, 32 bytes each)\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, seed := range seeds {
		if _, err := bw.WriteString(base64.RawURLEncoding.EncodeToString(seed[:]) + "\n"); err != nil {
			return fmt.Errorf("failed to write seed %d: %w", i, err)
		}
	}
	return bw.Flush()
}

func SaveSeeds(seeds [][32]byte, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create seed file: %w", err)
	}
	if err := WriteSeeds(file, seeds); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// ReadSeeds reads seeds written by WriteSeeds. Blank lines and lines
// starting with # are skipped.
func ReadSeeds(r io.Reader) ([][32]byte, error) {
	var seeds [][32]byte
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		decoded, err := base64.RawURLEncoding.DecodeString(line)
		if err != nil {
			return nil, fmt.Errorf("failed to decode seed at line %d: %w", lineNum, err)
		}
		if len(decoded) != 32 {
			return nil, fmt.Errorf("invalid seed length at line %d: got %d bytes, expected 32", lineNum, len(decoded))
		}
		var seed [32]byte
		copy(seed[:], decoded)
		seeds = append(seeds, seed)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}
	return seeds, nil
}

func LoadSeeds(path string) ([][32]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()
	return ReadSeeds(file)
}
