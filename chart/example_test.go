package chart_test

import (
	"context"
	"fmt"

	"github.com/uyouii/normal-band-chart/chart"
	"github.com/uyouii/normal-band-chart/model"
)

func ExampleAssemble() {
	params, err := model.NewDistributionParams(0, 1)
	if err != nil {
		panic(err)
	}

	bundle, err := chart.Assemble(context.Background(), params, -1.5, 1000)
	if err != nil {
		panic(err)
	}

	fmt.Println(bundle.MarkerBand)
	fmt.Printf("%.2f\n", bundle.Percentile.Value)
	fmt.Println(bundle.Below.Len(), bundle.Average.Len(), bundle.Above.Len())
	fmt.Printf("%q\n", bundle.Label.Text)
	// Output:
	// below
	// 6.68
	// 375 250 375
	// "Patient\n6.68%"
}
