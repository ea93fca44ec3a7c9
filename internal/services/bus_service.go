package services

import (
	"fmt"

	"busport/backend/internal/fare"
	"busport/backend/internal/repositories"
	"busport/backend/internal/utils"
)

// BusInfo is the aggregate served to the bus-information page: static bus
// data plus the route and its per-segment mappings.
type BusInfo struct {
	ID            int64             `json:"id"`
	CompanyName   string            `json:"companyName"`
	Category      string            `json:"category"`
	LicenseNo     string            `json:"licenseNo"`
	StartTime     string            `json:"startTime"`
	Stops         []string          `json:"stops"`
	PriceMappings []fare.PriceEntry `json:"priceMappings"`
	TimeMappings  []fare.TimeEntry  `json:"timeMappings"`
	SeatLayout    string            `json:"seatLayout"`
	Photo         string            `json:"photo"`
}

type BusService struct {
	BusRepo   repositories.BusRepository
	RequestID string
}

func (s BusService) GetBusInfo(busID int64) (BusInfo, error) {
	bus, err := s.BusRepo.GetByID(busID)
	if err != nil {
		return BusInfo{}, err
	}
	stops, err := s.BusRepo.Stops(busID)
	if err != nil {
		return BusInfo{}, err
	}
	prices, err := s.BusRepo.PriceEntries(busID)
	if err != nil {
		return BusInfo{}, err
	}
	times, err := s.BusRepo.TimeEntries(busID)
	if err != nil {
		return BusInfo{}, err
	}
	return BusInfo{
		ID:            bus.ID,
		CompanyName:   bus.CompanyName,
		Category:      bus.Category,
		LicenseNo:     bus.LicenseNo,
		StartTime:     bus.StartTime,
		Stops:         stops,
		PriceMappings: prices,
		TimeMappings:  times,
		SeatLayout:    bus.LayoutName,
		Photo:         bus.PhotoURL,
	}, nil
}

// CalculatorFor builds the fare calculator for one bus from its stored route
// and segment mappings. Built once per request; routes are small.
func (s BusService) CalculatorFor(busID int64) (*fare.Calculator, error) {
	info, err := s.GetBusInfo(busID)
	if err != nil {
		return nil, err
	}
	calc, err := fare.NewCalculator(info.Stops, info.StartTime, info.PriceMappings, info.TimeMappings)
	if err != nil {
		utils.LogEvent(s.RequestID, "bus", "bad_route_data", fmt.Sprintf("bus_id=%d err=%v", busID, err))
		return nil, err
	}
	calc.RequestID = s.RequestID
	return calc, nil
}
