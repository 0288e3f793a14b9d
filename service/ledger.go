package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"equipment-rental-backend/models"
	"equipment-rental-backend/storage"
)

const dateLayout = "2006-01-02"

// Ledger owns the rental collection: it validates and prices new agreements,
// and drives the equipment availability transitions on the catalog. The
// rental write and the equipment flip always share one store transaction.
type Ledger struct {
	store   storage.Store
	catalog *Catalog
	newID   func() string
	now     func() time.Time
}

func NewLedger(store storage.Store, catalog *Catalog) *Ledger {
	return &Ledger{
		store:   store,
		catalog: catalog,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

type StartRentalInput struct {
	EquipmentID string
	ClientName  string
	ClientEmail string
	ClientPhone string
	StartDate   string
	EndDate     string
}

// Quote is the derived pricing trio shown to the operator before commit.
type Quote struct {
	TotalDays  int     `json:"totalDays"`
	DailyRate  float64 `json:"dailyRate"`
	TotalValue float64 `json:"totalValue"`
}

// rentalDays counts days inclusively: same start and end is 1 day, one
// calendar day apart is 2.
func rentalDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

func parseRange(startDate, endDate string) (int, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, invalid("startDate", "invalid date")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, invalid("endDate", "invalid date")
	}
	days := rentalDays(start, end)
	if days <= 0 {
		return 0, invalid("endDate", "end date must be after start date")
	}
	return days, nil
}

// Quote recomputes the pricing trio from the live equipment rate. The
// frontend calls it whenever the date range or the selected equipment
// changes; the same rate is frozen into the record on Start.
func (l *Ledger) Quote(ctx context.Context, equipmentID, startDate, endDate string) (*Quote, error) {
	eq, err := l.catalog.Get(ctx, equipmentID)
	if err == ErrNotFound {
		return nil, invalid("equipmentId", "equipment not found")
	}
	if err != nil {
		return nil, err
	}
	days, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return &Quote{
		TotalDays:  days,
		DailyRate:  eq.DailyRate,
		TotalValue: float64(days) * eq.DailyRate,
	}, nil
}

func (in StartRentalInput) validate() error {
	fields := []struct{ name, value string }{
		{"equipmentId", in.EquipmentID},
		{"clientName", in.ClientName},
		{"clientEmail", in.ClientEmail},
		{"clientPhone", in.ClientPhone},
		{"startDate", in.StartDate},
		{"endDate", in.EndDate},
	}
	for _, f := range fields {
		if f.value == "" {
			return required(f.name)
		}
	}
	return nil
}

// Start validates the request, prices it, records the rental as active and
// marks the equipment rented. All validation runs before any write; the two
// writes happen in one transaction or not at all.
func (l *Ledger) Start(ctx context.Context, in StartRentalInput) (*models.Rental, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	days, err := parseRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	var created *models.Rental
	err = l.store.Atomically(ctx, func(tx storage.Store) error {
		items, err := tx.GetEquipment(ctx)
		if err != nil {
			return err
		}
		var eq *models.Equipment
		for i := range items {
			if items[i].ID == in.EquipmentID {
				eq = &items[i]
				break
			}
		}
		if eq == nil {
			return invalid("equipmentId", "equipment not found")
		}
		if eq.Status != models.EquipmentAvailable {
			return invalid("equipmentId", "equipment not available")
		}

		rental := models.Rental{
			ID:            l.newID(),
			EquipmentID:   eq.ID,
			EquipmentName: eq.Name,
			ClientName:    in.ClientName,
			ClientEmail:   in.ClientEmail,
			ClientPhone:   in.ClientPhone,
			StartDate:     in.StartDate,
			EndDate:       in.EndDate,
			TotalDays:     days,
			DailyRate:     eq.DailyRate,
			TotalValue:    float64(days) * eq.DailyRate,
			Status:        models.RentalActive,
			CreatedAt:     l.now().UTC(),
		}

		rentals, err := tx.GetRentals(ctx)
		if err != nil {
			return err
		}
		if err := tx.SaveRentals(ctx, append(rentals, rental)); err != nil {
			return err
		}
		if err := l.catalog.setStatus(ctx, tx, eq.ID, models.EquipmentRented); err != nil {
			return err
		}
		created = &rental
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Complete finalizes an active rental and releases its equipment.
func (l *Ledger) Complete(ctx context.Context, rentalID string) (*models.Rental, error) {
	return l.finalize(ctx, rentalID, models.RentalCompleted)
}

// Cancel voids an active rental with the same release semantics as Complete.
func (l *Ledger) Cancel(ctx context.Context, rentalID string) (*models.Rental, error) {
	return l.finalize(ctx, rentalID, models.RentalCancelled)
}

// finalize only performs the rented -> available transition on the equipment.
// Equipment moved to maintenance is a conflict and nothing is written;
// equipment that was deleted, or already released, leaves just the rental to
// finalize.
func (l *Ledger) finalize(ctx context.Context, rentalID string, to models.RentalStatus) (*models.Rental, error) {
	var out *models.Rental
	err := l.store.Atomically(ctx, func(tx storage.Store) error {
		rentals, err := tx.GetRentals(ctx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range rentals {
			if rentals[i].ID == rentalID && rentals[i].Status == models.RentalActive {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrNotFound
		}

		items, err := tx.GetEquipment(ctx)
		if err != nil {
			return err
		}
		var eq *models.Equipment
		for i := range items {
			if items[i].ID == rentals[idx].EquipmentID {
				eq = &items[i]
				break
			}
		}
		if eq != nil && eq.Status == models.EquipmentMaintenance {
			return ErrEquipmentConflict
		}

		rentals[idx].Status = to
		if err := tx.SaveRentals(ctx, rentals); err != nil {
			return err
		}
		if eq != nil && eq.Status == models.EquipmentRented {
			if err := l.catalog.setStatus(ctx, tx, eq.ID, models.EquipmentAvailable); err != nil {
				return err
			}
		}
		out = &rentals[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListActive returns the operational view: active rentals in insertion order.
func (l *Ledger) ListActive(ctx context.Context) ([]models.Rental, error) {
	rentals, err := l.store.GetRentals(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]models.Rental, 0, len(rentals))
	for _, r := range rentals {
		if r.Status == models.RentalActive {
			active = append(active, r)
		}
	}
	return active, nil
}

// ListAll returns the full history, most recent first.
func (l *Ledger) ListAll(ctx context.Context) ([]models.Rental, error) {
	rentals, err := l.store.GetRentals(ctx)
	if err != nil {
		return nil, err
	}
	if rentals == nil {
		rentals = []models.Rental{}
	}
	sort.SliceStable(rentals, func(i, j int) bool {
		return rentals[i].CreatedAt.After(rentals[j].CreatedAt)
	})
	return rentals, nil
}

// Summary is the dashboard aggregate, computed on demand.
type Summary struct {
	TotalEquipment   int     `json:"totalEquipment"`
	AvailableCount   int     `json:"availableCount"`
	RentedCount      int     `json:"rentedCount"`
	MaintenanceCount int     `json:"maintenanceCount"`
	ActiveRentals    int     `json:"activeRentals"`
	ActiveRevenue    float64 `json:"activeRevenue"`
	OccupancyRate    float64 `json:"occupancyRate"`
}

func (l *Ledger) Summarize(ctx context.Context) (*Summary, error) {
	items, err := l.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	rentals, err := l.store.GetRentals(ctx)
	if err != nil {
		return nil, err
	}

	s := &Summary{TotalEquipment: len(items)}
	for _, it := range items {
		switch it.Status {
		case models.EquipmentAvailable:
			s.AvailableCount++
		case models.EquipmentRented:
			s.RentedCount++
		case models.EquipmentMaintenance:
			s.MaintenanceCount++
		}
	}
	for _, r := range rentals {
		if r.Status == models.RentalActive {
			s.ActiveRentals++
			s.ActiveRevenue += r.TotalValue
		}
	}
	if s.TotalEquipment > 0 {
		s.OccupancyRate = float64(s.RentedCount) / float64(s.TotalEquipment)
	}
	return s, nil
}
