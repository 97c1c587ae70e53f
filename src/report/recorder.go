package report

// Recorder keeps every snapshot and the summary in memory.
type Recorder struct {
	Snapshots []Snapshot
	Summary   *Summary
}

func (r *Recorder) Tick(s Snapshot) error {
	r.Snapshots = append(r.Snapshots, s)
	return nil
}

func (r *Recorder) Final(s Summary) error {
	r.Summary = &s
	return nil
}
