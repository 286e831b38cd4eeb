package gluecss

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// RebuildReason explains the outcome of a rebuild check
type RebuildReason string

// Rebuild check outcomes. Everything except ReasonUpToDate means "rebuild".
const (
	ReasonForced         RebuildReason = "forced"
	ReasonMissing        RebuildReason = "missing"
	ReasonUnreadable     RebuildReason = "unreadable"
	ReasonHeaderMismatch RebuildReason = "header-mismatch"
	ReasonUpToDate       RebuildReason = "up-to-date"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Header returns the first line of a generated stylesheet, without the newline
func Header(version, hash string) string {
	return fmt.Sprintf("/* glue: %s hash: %s */", version, hash)
}

// NeedsRebuild reports whether the stylesheet at outputPath must be regenerated
func NeedsRebuild(outputPath, version, hash string, force bool) bool {
	rebuild, _ := CheckRebuild(outputPath, version, hash, force)
	return rebuild
}

// CheckRebuild is NeedsRebuild with the reason attached.
// I/O failures never surface as errors; they all mean "rebuild".
func CheckRebuild(outputPath, version, hash string, force bool) (bool, RebuildReason) {
	if force {
		return true, ReasonForced
	}

	// #nosec G304 - output path is derived from configuration
	f, err := os.Open(outputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, ReasonMissing
		}
		return true, ReasonUnreadable
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return true, ReasonUnreadable
	}

	line = bytes.TrimPrefix(line, utf8BOM)
	if string(line) != Header(version, hash)+"\n" {
		return true, ReasonHeaderMismatch
	}

	return false, ReasonUpToDate
}
