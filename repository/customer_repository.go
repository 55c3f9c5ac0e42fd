package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"forwardworkx-proposals/models"
)

// CustomerRepository is the lead log. Records are keyed strictly on email
// equality: a repeat download refreshes the contact fields and increments
// the proposal counter instead of inserting a second row.
type CustomerRepository struct {
	db *sqlx.DB
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Ensure CustomerRepository implements CustomerRepositoryInterface
var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)

type customerRow struct {
	ID               string    `db:"id"`
	CompanyName      string    `db:"company_name"`
	ContactPerson    string    `db:"contact_person"`
	Email            string    `db:"email"`
	Mobile           string    `db:"mobile"`
	BusinessCategory string    `db:"business_category"`
	ProposalCount    int       `db:"proposal_count"`
	JoinedAt         time.Time `db:"joined_at"`
}

func (row customerRow) toModel() models.Customer {
	return models.Customer{
		ID:               row.ID,
		CompanyName:      row.CompanyName,
		ContactPerson:    row.ContactPerson,
		Email:            row.Email,
		Mobile:           row.Mobile,
		BusinessCategory: row.BusinessCategory,
		ProposalCount:    row.ProposalCount,
		JoinedAt:         row.JoinedAt,
	}
}

// Upsert records a proposal download for the given client. First download
// inserts a record; later downloads with the same email update it.
func (r *CustomerRepository) Upsert(ctx context.Context, client models.ClientInfo) (*models.Customer, error) {
	log.Printf("📦 Lead log: recording download for %s", client.Email)

	var row customerRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, company_name, contact_person, email, mobile, business_category, proposal_count, joined_at
		FROM customers WHERE email = ?`, client.Email)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		row = customerRow{
			ID:               uuid.NewString(),
			CompanyName:      client.CompanyName,
			ContactPerson:    client.ContactPerson,
			Email:            client.Email,
			Mobile:           client.Phone,
			BusinessCategory: "N/A",
			ProposalCount:    1,
			JoinedAt:         time.Now(),
		}
		_, err = r.db.NamedExecContext(ctx, `
			INSERT INTO customers (id, company_name, contact_person, email, mobile, business_category, proposal_count, joined_at)
			VALUES (:id, :company_name, :contact_person, :email, :mobile, :business_category, :proposal_count, :joined_at)`,
			row)
		if err != nil {
			return nil, fmt.Errorf("failed to insert customer: %w", err)
		}
		log.Printf("✅ Lead log: new customer %s", row.ID)

	case err != nil:
		return nil, fmt.Errorf("failed to look up customer: %w", err)

	default:
		row.CompanyName = client.CompanyName
		row.ContactPerson = client.ContactPerson
		row.Mobile = client.Phone
		row.ProposalCount++
		_, err = r.db.NamedExecContext(ctx, `
			UPDATE customers
			SET company_name = :company_name, contact_person = :contact_person,
			    mobile = :mobile, proposal_count = :proposal_count
			WHERE email = :email`, row)
		if err != nil {
			return nil, fmt.Errorf("failed to update customer: %w", err)
		}
		log.Printf("✅ Lead log: customer %s download #%d", row.ID, row.ProposalCount)
	}

	customer := row.toModel()
	return &customer, nil
}

// List returns every recorded lead, newest first
func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	var rows []customerRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, company_name, contact_person, email, mobile, business_category, proposal_count, joined_at
		FROM customers ORDER BY joined_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	out := make([]models.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}
