package teleports_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/crimson-sun/teleports/pkg/teleports"
)

func Example() {
	simLog := strings.Join([]string{
		"Warning: Teleporting vehicle 'veh0'; waited too long, lane='A_0', time=10.50.",
		"Warning: Teleporting vehicle 'veh1'; waited too long, lane='A_0', time=20.00.",
		"Warning: Teleporting vehicle 'veh2'; collision with 'veh3', lane='B_1', gap=-0.50, time=3700.00.",
	}, "\n")

	a, err := teleports.New()
	if err != nil {
		log.Fatal(err)
	}
	report, err := a.Analyze(strings.NewReader(simLog))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("waiting:", report.Waiting.Entries, "total", report.Waiting.Total)
	fmt.Println("collisions:", report.Collisions.Entries, "total", report.Collisions.Total)

	rows, err := report.Series()
	if err != nil {
		log.Fatal(err)
	}
	for r := range rows {
		fmt.Println(r.Bucket, r.Waiting, r.Collision)
	}
	// Output:
	// waiting: [{2 A}] total 2
	// collisions: [{1 B}] total 1
	// 0 2 0
	// 1 0 1
}
