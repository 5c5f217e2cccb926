package proc

import (
	"strings"
	"testing"

	"github.com/pranshuparmar/pstree/pkg/model"
)

const bashStatus = `Name:	bash
Umask:	0022
State:	S (sleeping)
Tgid:	4242
Ngid:	0
Pid:	4242
PPid:	1
TracerPid:	0
Uid:	1000	1000	1000	1000
Threads:	1
SigQ:	0/63229
`

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.Record
	}{
		{
			name:  "full status",
			input: bashStatus,
			want:  model.Record{Name: "bash", PID: 4242, TGID: 4242, PPID: 1, Threads: 1},
		},
		{
			name:  "thread status",
			input: "Name:\tworker\nTgid:\t10\nPid:\t12\nPPid:\t1\nThreads:\t3\n",
			want:  model.Record{Name: "worker", PID: 12, TGID: 10, PPID: 1, Threads: 3},
		},
		{
			name:  "space separated and name with spaces",
			input: "Name:   kworker/0:1 events\nPid: 7\nTgid: 7\nPPid: 2\nThreads: 1\n",
			want:  model.Record{Name: "kworker/0:1 events", PID: 7, TGID: 7, PPID: 2, Threads: 1},
		},
		{
			name:  "missing fields stay unset",
			input: "Name:\tghost\nPid:\t9\n",
			want:  model.Record{Name: "ghost", PID: 9, TGID: model.Unset, PPID: model.Unset, Threads: model.Unset},
		},
		{
			name:  "malformed number",
			input: "Name:\tx\nPid:\tnope\nTgid:\t3\nPPid:\t1\nThreads:\t1\n",
			want:  model.Record{Name: "x", PID: model.Unset, TGID: 3, PPID: 1, Threads: 1},
		},
		{
			name:  "lines without a colon are ignored",
			input: "garbage\nName:\tinit\nPid:\t1\nTgid:\t1\nPPid:\t0\nThreads:\t1\n",
			want:  model.Record{Name: "init", PID: 1, TGID: 1, PPID: 0, Threads: 1},
		},
		{
			name:  "stops after the last field",
			input: "Name:\ta\nPid:\t2\nTgid:\t2\nPPid:\t1\nThreads:\t1\nName:\tlater\n",
			want:  model.Record{Name: "a", PID: 2, TGID: 2, PPID: 1, Threads: 1},
		},
		{
			name:  "empty",
			input: "",
			want:  model.NewRecord(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseStatus() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseStatus() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadStatusMissingFile(t *testing.T) {
	_, err := ReadStatus(t.TempDir() + "/nope/status")
	if err == nil || !strings.Contains(err.Error(), "nope/status") {
		t.Fatalf("ReadStatus() error = %v, want one naming the path", err)
	}
}

func FuzzParseStatus(f *testing.F) {
	f.Add(bashStatus)
	f.Add("Pid:\t-5\n")
	f.Add("Name:")

	f.Fuzz(func(t *testing.T, input string) {
		rec, err := ParseStatus(strings.NewReader(input))
		if err != nil {
			return
		}
		for _, v := range []int{rec.PID, rec.TGID, rec.PPID, rec.Threads} {
			if v < model.Unset {
				t.Fatalf("ParseStatus(%q) produced %d, below the unset sentinel", input, v)
			}
		}
	})
}
