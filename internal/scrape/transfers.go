package scrape

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type TransferClub struct {
	ClubID        string `json:"club_id"`
	ClubName      string `json:"club_name,omitempty"`
	CountryID     string `json:"country_id,omitempty"`
	CompetitionID string `json:"competition_id,omitempty"`
}

// TransferRecord is one terminated transfer from the transfer-history API.
type TransferRecord struct {
	TransferID    string       `json:"transfer_id"`
	Date          string       `json:"date,omitempty"`
	Season        string       `json:"season,omitempty"`
	Age           string       `json:"age,omitempty"`
	MarketValue   string       `json:"market_value,omitempty"`
	Fee           string       `json:"fee,omitempty"`
	From          TransferClub `json:"from"`
	To            TransferClub `json:"to"`
	ContractUntil string       `json:"contract_until,omitempty"`
	Type          string       `json:"type,omitempty"`
	RelativeURL   string       `json:"relative_url,omitempty"`
}

type CurrentClub struct {
	TransferClub
	JoinedDate    string `json:"joined_date,omitempty"`
	ContractUntil string `json:"contract_until,omitempty"`
}

// TransferHistory is a player's full transfer record. Club names are not
// part of the API payload; the caller enriches them through profile
// lookups.
type TransferHistory struct {
	PlayerID    string           `json:"player_id"`
	Transfers   []TransferRecord `json:"transfers"`
	CurrentClub *CurrentClub     `json:"current_club"`
}

type transferParty struct {
	ClubID        any `json:"clubId"`
	CountryID     any `json:"countryId"`
	CompetitionID any `json:"competitionId"`
}

type transferPayload struct {
	Success bool `json:"success"`
	Data    struct {
		History struct {
			Terminated []struct {
				ID      any `json:"id"`
				Details struct {
					Date   string `json:"date"`
					Age    any    `json:"age"`
					Season struct {
						Display string `json:"display"`
					} `json:"season"`
					MarketValue struct {
						Compact string `json:"compact"`
					} `json:"marketValue"`
					Fee struct {
						Compact string `json:"compact"`
					} `json:"fee"`
					ContractUntilDate string `json:"contractUntilDate"`
				} `json:"details"`
				TransferSource      transferParty `json:"transferSource"`
				TransferDestination transferParty `json:"transferDestination"`
				TypeDetails         struct {
					Type string `json:"type"`
				} `json:"typeDetails"`
				RelativeURL string `json:"relativeUrl"`
			} `json:"terminated"`
		} `json:"history"`
		CurrentClub *struct {
			transferParty
			Joined        string `json:"joined"`
			ContractUntil string `json:"contractUntil"`
		} `json:"currentClub"`
	} `json:"data"`
}

// ExtractTransferHistory parses the transfer-history API payload into
// ordered transfer records, newest first as served.
func ExtractTransferHistory(raw []byte, playerID string) (*TransferHistory, error) {
	var payload transferPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode transfer history payload: %w", err)
	}
	if !payload.Success {
		return nil, &StructureError{Anchor: "transfer history payload"}
	}

	history := &TransferHistory{
		PlayerID:  playerID,
		Transfers: []TransferRecord{},
	}
	for _, t := range payload.Data.History.Terminated {
		history.Transfers = append(history.Transfers, TransferRecord{
			TransferID:    idString(t.ID),
			Date:          t.Details.Date,
			Season:        t.Details.Season.Display,
			Age:           idString(t.Details.Age),
			MarketValue:   t.Details.MarketValue.Compact,
			Fee:           t.Details.Fee.Compact,
			From:          partyClub(t.TransferSource),
			To:            partyClub(t.TransferDestination),
			ContractUntil: t.Details.ContractUntilDate,
			Type:          t.TypeDetails.Type,
			RelativeURL:   t.RelativeURL,
		})
	}

	if cc := payload.Data.CurrentClub; cc != nil {
		history.CurrentClub = &CurrentClub{
			TransferClub:  partyClub(cc.transferParty),
			JoinedDate:    cc.Joined,
			ContractUntil: cc.ContractUntil,
		}
	}
	return history, nil
}

func partyClub(p transferParty) TransferClub {
	return TransferClub{
		ClubID:        idString(p.ClubID),
		CountryID:     idString(p.CountryID),
		CompetitionID: idString(p.CompetitionID),
	}
}

// idString normalizes an identifier the API serves inconsistently as a
// JSON string or number.
func idString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatInt(int64(x), 10)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
