package coinfolio

import "testing"

func TestAssetSeed_Validate(t *testing.T) {
	valid := AssetSeed{Name: "Solana", Symbol: "SOL", Chain: "Solana", Price: USD(150), ATH: USD(260)}

	testCases := []struct {
		name    string
		mutate  func(*AssetSeed)
		wantErr bool
	}{
		{name: "valid", mutate: func(s *AssetSeed) {}},
		{name: "zero prices are valid", mutate: func(s *AssetSeed) { s.Price = USD(0); s.ATH = USD(0) }},
		{name: "empty name", mutate: func(s *AssetSeed) { s.Name = "" }, wantErr: true},
		{name: "blank name", mutate: func(s *AssetSeed) { s.Name = "  " }, wantErr: true},
		{name: "empty symbol", mutate: func(s *AssetSeed) { s.Symbol = "" }, wantErr: true},
		{name: "empty chain", mutate: func(s *AssetSeed) { s.Chain = "" }, wantErr: true},
		{name: "negative price", mutate: func(s *AssetSeed) { s.Price = USD(-150) }, wantErr: true},
		{name: "negative ath", mutate: func(s *AssetSeed) { s.ATH = USD(-260) }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seed := valid
			tc.mutate(&seed)
			err := seed.Validate()
			if gotErr := err != nil; gotErr != tc.wantErr {
				t.Errorf("Validate() = %v, want error: %v", err, tc.wantErr)
			}
		})
	}
}

func TestAssetSeed_Asset(t *testing.T) {
	asset := solSeed.Asset()
	if !asset.Holdings.IsZero() {
		t.Errorf("new asset holdings = %s, want 0", asset.Holdings)
	}
	if asset.Symbol != "SOL" || asset.Name != "Solana" {
		t.Errorf("new asset = %s %s, want SOL Solana", asset.Symbol, asset.Name)
	}
}

func TestAsset_Value(t *testing.T) {
	asset := solSeed.Asset()
	asset.Holdings = Q(0.5)
	if want := USD(75); !asset.Value().Equal(want) {
		t.Errorf("Value() = %s, want %s", asset.Value(), want)
	}
}

func TestAsset_Key(t *testing.T) {
	if got := (Asset{Symbol: "BtC"}).Key(); got != "btc" {
		t.Errorf("Key() = %q, want btc", got)
	}
}
