package source

import (
	"context"
	"database/sql"

	"github.com/radieske/bancas-dashboard/internal/bancas"
)

// Postgres lê os registros da tabela bancas (somente leitura)
type Postgres struct {
	DB *sql.DB
}

// NewPostgres cria o loader a partir de uma conexão já aberta
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{DB: db} }

// Load devolve as bancas na ordem de cadastro (id), que faz o papel da ordem das linhas
func (p *Postgres) Load(ctx context.Context) ([]bancas.Record, error) {
	const q = `
		SELECT id, nome_dono, nome_banca, lat_long, endereco,
		       apostas_dia::text, valor_aposta::text,
		       patrimonio, divida_ativa, renovacao_licenca::text
		FROM bancas
		ORDER BY id;
	`
	rows, err := p.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, &bancas.LoadError{Source: "postgres", Err: err}
	}
	defer rows.Close()

	var out []bancas.Record
	for rows.Next() {
		var id int
		vals := make(map[string]string, len(bancas.RequiredColumns))
		var owner, shop, coords, addr, bets, value, worth, debt, renewal sql.NullString
		if err := rows.Scan(&id, &owner, &shop, &coords, &addr, &bets, &value, &worth, &debt, &renewal); err != nil {
			return nil, &bancas.LoadError{Source: "postgres", Err: err}
		}
		vals[bancas.ColOwner] = owner.String
		vals[bancas.ColShop] = shop.String
		vals[bancas.ColCoordinates] = coords.String
		vals[bancas.ColAddress] = addr.String
		vals[bancas.ColBetsPerDay] = bets.String
		vals[bancas.ColValuePerBet] = value.String
		vals[bancas.ColNetWorth] = worth.String
		vals[bancas.ColActiveDebt] = debt.String
		vals[bancas.ColRenewal] = renewal.String

		r, err := recordFromCells("postgres", id, func(col string) string { return vals[col] })
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &bancas.LoadError{Source: "postgres", Err: err}
	}
	return out, nil
}
