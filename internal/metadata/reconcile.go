package metadata

// Local holds the metrics computed from the sequence and annotation files.
type Local struct {
	Length      int64
	GC          int64
	TotalCDS    int64
	Pseudogenes int64
}

// Reconciled is the merged view used to build an output record.
type Reconciled struct {
	Length      int64
	GCPercent   float64
	TotalCDS    int64
	Pseudogenes int64
}

// Reconcile merges report values over local ones. meta may be nil.
//
//   - Length: report total length, else the local length.
//   - GC%: report gcCount/atgcCount when both are present, else local
//     GC/local length; 0 for an empty sequence.
//   - CDS and pseudogene counts: report value when present.
func Reconcile(meta *AssemblyMetadata, local Local) Reconciled {
	r := Reconciled{
		Length:      local.Length,
		TotalCDS:    local.TotalCDS,
		Pseudogenes: local.Pseudogenes,
	}
	if local.Length > 0 {
		r.GCPercent = float64(local.GC) / float64(local.Length) * 100
	}
	if meta == nil {
		return r
	}

	r.Length = meta.TotalSequenceLength.Or(r.Length)
	r.TotalCDS = meta.TotalCDS.Or(r.TotalCDS)
	r.Pseudogenes = meta.Pseudogenes.Or(r.Pseudogenes)

	gc, hasGC := meta.GCCount.Get()
	atgc, hasATGC := meta.ATGCCount.Get()
	if hasGC && hasATGC && atgc != 0 {
		r.GCPercent = float64(gc) / float64(atgc) * 100
	}
	return r
}
