package lba

import "fmt"

// holeLCN marks a cluster run with no allocated storage in a retrieval
// pointer result.
const holeLCN = -1

// clusterRun is one entry of a retrieval-pointer result: the run covers the
// VCNs from the end of the previous run up to (but excluding) NextVCN, and
// starts at LCN on the volume.
type clusterRun struct {
	NextVCN int64
	LCN     int64
}

// recordFromRuns locates the run containing vcn and converts it into a
// byte-addressed ExtentRecord using the volume's cluster size. startingVCN
// is the first VCN covered by runs[0].
//
// hole is true when the covering run has no allocated clusters. An error is
// returned when the run list does not cover vcn at all, which for an
// in-bounds offset means the backend violated the retrieval-pointer
// protocol.
func recordFromRuns(runs []clusterRun, startingVCN, vcn int64, clusterSize uint32) (rec ExtentRecord, hole bool, err error) {
	if vcn < startingVCN {
		return ExtentRecord{}, false, fmt.Errorf("retrieval pointers start at VCN %d, after requested VCN %d", startingVCN, vcn)
	}

	cs := uint64(clusterSize)
	prev := startingVCN
	for _, run := range runs {
		if run.NextVCN <= prev {
			return ExtentRecord{}, false, fmt.Errorf("non-increasing VCN %d in retrieval pointers", run.NextVCN)
		}
		if vcn < run.NextVCN {
			if run.LCN == holeLCN {
				return ExtentRecord{}, true, nil
			}
			return ExtentRecord{
				Logical:  uint64(prev) * cs,
				Physical: uint64(run.LCN) * cs,
				Length:   uint64(run.NextVCN-prev) * cs,
			}, false, nil
		}
		prev = run.NextVCN
	}
	return ExtentRecord{}, false, fmt.Errorf("retrieval pointers do not cover VCN %d", vcn)
}
