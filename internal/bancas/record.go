package bancas

// Colunas obrigatórias da planilha de bancas
const (
	ColOwner       = "NOME DONO DA BANCA"
	ColShop        = "NOME BANCA"
	ColCoordinates = "LATITUDE/LONGITUDE"
	ColAddress     = "ENDERECO"
	ColBetsPerDay  = "QUANTIDADE APOSTAS DIA"
	ColValuePerBet = "VALOR DE CADA APOSTA"
	ColNetWorth    = "PATRIMONIO"
	ColActiveDebt  = "DIVIDA ATIVA"
	ColRenewal     = "DATA RENOVACAO LICENCA"
)

// RequiredColumns lista as colunas na ordem em que aparecem na planilha de origem
var RequiredColumns = []string{
	ColOwner,
	ColShop,
	ColCoordinates,
	ColAddress,
	ColBetsPerDay,
	ColValuePerBet,
	ColNetWorth,
	ColActiveDebt,
	ColRenewal,
}

// Record representa uma banca (uma linha da planilha)
// NetWorth, ActiveDebt e LicenseRenewal guardam o texto bruto da célula;
// a conversão acontece na derivação, linha a linha.
type Record struct {
	Row            int     `json:"row"` // linha de origem, cabeçalho = 1
	OwnerName      string  `json:"ownerName"`
	ShopName       string  `json:"shopName"`
	Coordinates    string  `json:"coordinates"` // "lat, lon"
	Address        string  `json:"address"`
	BetsPerDay     float64 `json:"betsPerDay"`
	ValuePerBet    float64 `json:"valuePerBet"`
	NetWorth       string  `json:"netWorth"`
	ActiveDebt     string  `json:"activeDebt"`
	LicenseRenewal string  `json:"licenseRenewal"`
}
