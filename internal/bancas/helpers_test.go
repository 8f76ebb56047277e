package bancas

import "time"

var testNow = time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)

func sampleRecords() []Record {
	return []Record{
		{Row: 2, OwnerName: "Carlos", ShopName: "Banca Sé", Coordinates: "-23.5505, -46.6333", Address: "Praça da Sé, 1",
			BetsPerDay: 10, ValuePerBet: 5, NetWorth: "R$ 1.200,00", ActiveDebt: "R$ 200,00", LicenseRenewal: "2025-01-11"},
		{Row: 3, OwnerName: "Ana", ShopName: "Banca Luz", Coordinates: "-23.5365, -46.6339", Address: "Rua da Luz, 10",
			BetsPerDay: 20, ValuePerBet: 2, NetWorth: "R$ 500,00", ActiveDebt: "R$ 900,00", LicenseRenewal: "45658"},
		{Row: 4, OwnerName: "Carlos", ShopName: "Banca Paulista", Coordinates: "-23.5614, -46.6559", Address: "Av. Paulista, 900",
			BetsPerDay: 30, ValuePerBet: 1.5, NetWorth: "R$ 3.000,00", ActiveDebt: "R$ 0,00", LicenseRenewal: "2024-12-22"},
		{Row: 5, OwnerName: "Bruno", ShopName: "Banca Mooca", Coordinates: "-23.5505, -46.5990", Address: "Rua da Mooca, 5",
			BetsPerDay: 5, ValuePerBet: 10, NetWorth: "R$ 100,00", ActiveDebt: "R$ 100,00", LicenseRenewal: "11/02/2025"},
	}
}
