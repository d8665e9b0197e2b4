// Package teleports extracts teleport statistics from traffic simulation
// logs. Vehicles the simulator removes from the network, because they
// waited too long or collided, are counted per road segment (or lane) and
// per fixed-width time bucket.
//
// Quick start:
//
//	a, err := teleports.New(teleports.WithBucketWidth(900))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := a.AnalyzeFile("sim.log.gz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Waiting.Total, report.Collisions.Total)
//
// Compressed logs (".gz", ".zst") are decompressed transparently by
// AnalyzeFile.
package teleports
