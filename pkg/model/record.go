package model

// Unset marks a numeric field that a status source never supplied.
const Unset = -1

// InitPID is the conventional init process, the real root of the tree.
const InitPID = 1

// Record is the flat attribute tuple read from one process or thread status source
type Record struct {
	Name    string `json:"name"`
	PID     int    `json:"pid"`
	TGID    int    `json:"tgid"`
	PPID    int    `json:"ppid"`
	Threads int    `json:"threads"`
}

// NewRecord returns a record with every numeric field unset
func NewRecord() Record {
	return Record{PID: Unset, TGID: Unset, PPID: Unset, Threads: Unset}
}

func (r Record) IsThread() bool {
	return r.TGID != r.PID
}

func (r Record) HasThreads() bool {
	return r.Threads > 1
}

func (r Record) IsInit() bool {
	return r.PID == InitPID
}
