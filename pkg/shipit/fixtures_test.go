package shipit_test

import (
	"github.com/tournevent/shipit/pkg/shipit"
)

func helsinkiSender() shipit.Party {
	return shipit.Party{
		Name:     "Sender Oy",
		Email:    "sender@example.com",
		Phone:    "+358401234567",
		Address:  "Mannerheimintie 1",
		City:     "Helsinki",
		Postcode: "00100",
		Country:  "FI",
	}
}

func stockholmReceiver() shipit.Party {
	return shipit.Party{
		Name:     "Receiver AB",
		Email:    "receiver@example.com",
		Phone:    "+46701234567",
		Address:  "Drottninggatan 1",
		City:     "Stockholm",
		Postcode: "112 22",
		Country:  "SE",
	}
}

func samplePackage() shipit.Parcel {
	return shipit.Parcel{
		Copies: shipit.Some(1),
		Type:   shipit.Some("PACKAGE"),
		Length: 15,
		Width:  15,
		Height: 15,
		Weight: 1,
	}
}

func minimalShipment() *shipit.ShipmentRequest {
	return &shipit.ShipmentRequest{
		Sender:   helsinkiSender(),
		Receiver: stockholmReceiver(),
		Parcels: []shipit.Parcel{
			{Length: 10, Width: 10, Height: 10, Weight: 1},
		},
		ServiceID: "POSTI.2103",
	}
}
