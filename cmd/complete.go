package cmd

import (
	"os"
	"strings"

	"github.com/etnz/networth"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete runs shell completion for the program name when the shell asks
// for it, and exits. It does nothing otherwise. Install it with COMP_INSTALL=1.
func Complete(name string) {
	completion().Complete(name)
}

// completion describes the nw command line for shell completion.
func completion() *complete.Command {
	assetTypes := make(predict.Set, 0, len(networth.AssetTypes()))
	for _, t := range networth.AssetTypes() {
		assetTypes = append(assetTypes, string(t))
	}
	editFlags := map[string]complete.Predictor{
		"type":       assetTypes,
		"label":      predict.Something,
		"amount":     predict.Something,
		"loan":       predict.Something,
		"repayments": predict.Something,
		"frequency":  predict.Set{string(networth.Weekly), string(networth.Fortnightly), string(networth.Monthly)},
		"can-sell":   predict.Nothing,
		"liquidity":  predict.Set{"all", "none", "50%", "spend:", "keep:"},
		"secures":    complete.PredictFunc(predictSlugs),
	}

	examples := predict.Set{}
	for _, e := range networth.Examples(Global.Currency) {
		examples = append(examples, networth.Slugify(e.Label))
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"assets":   predict.Files("*.jsonl"),
			"currency": predict.Something,
			"style":    predict.Set{"auto", "dark", "light", "notty", "raw"},
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"net":      {},
			"afford":   {Flags: map[string]complete.Predictor{"ladder": predict.Something}},
			"ls":       {},
			"add":      {Flags: editFlags},
			"update":   {Flags: editFlags, Args: complete.PredictFunc(predictSlugs)},
			"rm":       {Args: complete.PredictFunc(predictSlugs)},
			"examples": {},
			"use":      {Flags: map[string]complete.Predictor{"f": predict.Nothing}, Args: examples},
			"query":    {Args: predict.Something},
			"fmt":      {Flags: map[string]complete.Predictor{"check": predict.Nothing}},
			"topic":    {Args: complete.PredictFunc(predictTopics)},
		},
	}
}

// predictSlugs predicts the slugs of the assets in the assets file.
func predictSlugs(prefix string) []string {
	f, err := os.Open(Global.AssetsFile)
	if err != nil {
		return nil
	}
	defer f.Close()
	assets, err := networth.DecodeAssets(f, Global.Currency)
	if err != nil {
		return nil
	}
	var slugs []string
	for _, a := range assets {
		if slug := a.Details().Slug; strings.HasPrefix(slug, prefix) {
			slugs = append(slugs, slug)
		}
	}
	return slugs
}
