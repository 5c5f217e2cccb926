package proc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/dustin/go-humanize"

	"github.com/pranshuparmar/pstree/pkg/model"
)

// DefaultRoot is where the kernel exposes one directory per process
const DefaultRoot = "/proc"

var (
	ErrSourceUnavailable = errors.New("process source unavailable")
	ErrUnreadable        = errors.New("unreadable process entry")
)

// Options controls how a scan treats entries it cannot read.
type Options struct {
	// SkipUnreadable drops entries whose status cannot be opened, typically a
	// process that exited mid-scan, instead of failing the whole scan.
	SkipUnreadable bool

	// InheritThreadNames labels thread records with their process's name.
	InheritThreadNames bool

	Verbose bool
}

// Source enumerates process and thread records below a proc root.
type Source struct {
	Root string
	Options

	log *logger.Logger
}

func NewSource(root string, opts Options) *Source {
	if root == "" {
		root = DefaultRoot
	}
	return &Source{
		Root:    root,
		Options: opts,
		log:     logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "proc")),
	}
}

// Scan returns one record per process in ascending pid order, each followed
// by the records of its other threads in ascending tid order.
func (s *Source) Scan() ([]model.Record, error) {
	pids, err := ListPIDs(s.Root, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	var records []model.Record
	threads := 0
	for _, pid := range pids {
		dir := filepath.Join(s.Root, pid)

		rec, err := ReadStatus(filepath.Join(dir, statusFile))
		if err != nil {
			if err := s.unreadable(dir, err); err != nil {
				return nil, err
			}
			continue
		}
		records = append(records, rec)

		tids, err := ListPIDs(filepath.Join(dir, "task"), pid)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err := s.unreadable(dir, err); err != nil {
				return nil, err
			}
			continue
		}

		for _, tid := range tids {
			path := filepath.Join(dir, "task", tid, statusFile)
			trec, err := ReadStatus(path)
			if err != nil {
				if err := s.unreadable(path, err); err != nil {
					return nil, err
				}
				continue
			}
			if s.InheritThreadNames {
				trec.Name = rec.Name
			}
			records = append(records, trec)
			threads++
		}
	}

	if s.Verbose {
		s.log.Debugln("scanned", s.Root+":", humanize.Comma(int64(len(records)-threads)), "processes,", humanize.Comma(int64(threads)), "threads")
	}
	return records, nil
}

func (s *Source) unreadable(entry string, err error) error {
	if !s.SkipUnreadable {
		return fmt.Errorf("%w: unable to create node for %s: %w", ErrUnreadable, entry, err)
	}
	s.log.Warn("skipping ", entry, ": ", err)
	return nil
}

// ListPIDs returns the numeric entries of dir sorted numerically, leaving
// out skip. skip is how a task listing excludes the thread group leader,
// which is already covered by the process record.
func ListPIDs(dir, skip string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	type entry struct {
		name string
		id   int
	}
	var ids []entry
	for _, e := range entries {
		if !e.IsDir() || e.Name() == skip || !IsPIDDir(e.Name()) {
			continue
		}
		id, _ := strconv.Atoi(e.Name())
		ids = append(ids, entry{e.Name(), id})
	}
	slices.SortFunc(ids, func(a, b entry) int {
		return a.id - b.id
	})

	names := make([]string, len(ids))
	for i, e := range ids {
		names[i] = e.name
	}
	return names, nil
}

// IsPIDDir reports whether name is a positive decimal pid
func IsPIDDir(name string) bool {
	if name == "" || name[0] == '0' {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	_, err := strconv.Atoi(name)
	return err == nil
}
