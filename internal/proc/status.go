package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pranshuparmar/pstree/pkg/model"
)

const statusFile = "status"

// status keys we care about, everything else in the file is ignored
const (
	keyName    = "Name"
	keyPid     = "Pid"
	keyTgid    = "Tgid"
	keyPPid    = "PPid"
	keyThreads = "Threads"
)

const (
	seenName = 1 << iota
	seenPid
	seenTgid
	seenPPid
	seenThreads

	seenAll = seenName | seenPid | seenTgid | seenPPid | seenThreads
)

// ParseStatus reads "Key:\tvalue" lines of a status file. Fields that never
// show up, or carry a malformed number, stay model.Unset.
func ParseStatus(r io.Reader) (model.Record, error) {
	rec := model.NewRecord()
	seen := 0

	sc := bufio.NewScanner(r)
	for seen != seenAll && sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		value = strings.TrimLeft(value, " \t")

		switch key {
		case keyName:
			rec.Name = value
			seen |= seenName
		case keyPid:
			rec.PID = parseID(value)
			seen |= seenPid
		case keyTgid:
			rec.TGID = parseID(value)
			seen |= seenTgid
		case keyPPid:
			rec.PPID = parseID(value)
			seen |= seenPPid
		case keyThreads:
			rec.Threads = parseID(value)
			seen |= seenThreads
		}
	}
	if err := sc.Err(); err != nil {
		return rec, err
	}
	return rec, nil
}

func parseID(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return model.Unset
	}
	return n
}

// ReadStatus parses the status file at path
func ReadStatus(path string) (model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Record{}, fmt.Errorf("couldn't open file %s: %w", path, err)
	}
	defer f.Close()

	rec, err := ParseStatus(f)
	if err != nil {
		return model.Record{}, fmt.Errorf("read %s: %w", path, err)
	}
	return rec, nil
}
