package assets

import (
	"context"

	assetsfeature "tableflip.dev/tally/pkg/assets"
	"tableflip.dev/tally/pkg/feature"
	"tableflip.dev/tally/pkg/printers"
	"tableflip.dev/tally/pkg/sample"
)

// Assets prints the demo inventory through the assets feature's filter.
type Assets struct {
	Category string
	Query    string
}

func (a *Assets) Do(ctx context.Context) error {
	store := feature.NewStore(assetsfeature.NewState(sample.Assets()...), assetsfeature.New())
	defer store.Close()

	if a.Category != "" {
		store.Send(assetsfeature.SetCategory(a.Category))
	}
	if a.Query != "" {
		store.Send(assetsfeature.SetQuery(a.Query))
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Assets")
	pp.AssetTable(assetsfeature.Filtered(store.State())...)
	return nil
}
