package database

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	"jobboard-api/internal/models"
)

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

var (
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Size: 255, Unique: true},
		{Name: "password_hash", Type: field.TypeString, Size: 255},
		{Name: "role", Type: field.TypeEnum, Enums: enumValues([]models.Role{models.RoleUser, models.RoleAdmin}), Default: string(models.RoleUser)},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}

	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "full_name", Type: field.TypeString, Size: 255, Nullable: true},
		{Name: "headline", Type: field.TypeString, Size: 255, Nullable: true},
		{Name: "bio", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "phone_number", Type: field.TypeString, Size: 32, Nullable: true},
		{Name: "resume_url", Type: field.TypeString, Size: 2048, Nullable: true},
		{Name: "visibility", Type: field.TypeEnum, Enums: enumValues([]models.Visibility{models.VisibilityPublic, models.VisibilityPrivate}), Default: string(models.VisibilityPublic)},
		{Name: "updated_at", Type: field.TypeTime},
	}
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "profiles_users_profile",
				Columns:    []*schema.Column{ProfilesColumns[1]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}

	// JobCategoriesColumns holds the columns for the "job_categories" table.
	JobCategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100, Unique: true},
		{Name: "slug", Type: field.TypeString, Size: 100, Unique: true},
	}
	JobCategoriesTable = &schema.Table{
		Name:       "job_categories",
		Columns:    JobCategoriesColumns,
		PrimaryKey: []*schema.Column{JobCategoriesColumns[0]},
	}

	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "company", Type: field.TypeString, Size: 255},
		{Name: "location", Type: field.TypeString, Size: 255},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "job_type", Type: field.TypeEnum, Enums: enumValues(models.JobTypes)},
		{Name: "salary_min", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "salary_max", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeUUID, Nullable: true},
		{Name: "posted_by", Type: field.TypeUUID},
	}
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_job_categories_jobs",
				Columns:    []*schema.Column{JobsColumns[12]},
				RefColumns: []*schema.Column{JobCategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "jobs_users_posted_jobs",
				Columns:    []*schema.Column{JobsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[10]},
			},
			{
				Name:    "job_job_type",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[7]},
			},
		},
	}

	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "resume", Type: field.TypeString, Size: 2048},
		{Name: "cover_letter", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeEnum, Enums: enumValues(models.ApplicationStatuses), Default: string(models.ApplicationStatusSubmitted)},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "applicant_id", Type: field.TypeUUID},
	}
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "applications_jobs_applications",
				Columns:    []*schema.Column{ApplicationsColumns[6]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "applications_users_applications",
				Columns:    []*schema.Column{ApplicationsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "application_job_id_applicant_id",
				Unique:  true,
				Columns: []*schema.Column{ApplicationsColumns[6], ApplicationsColumns[7]},
			},
			{
				Name:    "application_applicant_id",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[7]},
			},
		},
	}

	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "industry", Type: field.TypeString, Size: 100, Nullable: true},
		{Name: "website_url", Type: field.TypeString, Size: 2048, Nullable: true},
		{Name: "logo", Type: field.TypeString, Size: 2048, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeUUID},
	}
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "companies_users_companies",
				Columns:    []*schema.Column{CompaniesColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}

	// CountriesColumns holds the columns for the "countries" table.
	CountriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100, Unique: true},
		{Name: "iso_code", Type: field.TypeString, Size: 3, Nullable: true},
	}
	CountriesTable = &schema.Table{
		Name:       "countries",
		Columns:    CountriesColumns,
		PrimaryKey: []*schema.Column{CountriesColumns[0]},
	}

	// StatesColumns holds the columns for the "states" table.
	StatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "country_id", Type: field.TypeUUID},
	}
	StatesTable = &schema.Table{
		Name:       "states",
		Columns:    StatesColumns,
		PrimaryKey: []*schema.Column{StatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "states_countries_states",
				Columns:    []*schema.Column{StatesColumns[2]},
				RefColumns: []*schema.Column{CountriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "state_country_id_name",
				Unique:  true,
				Columns: []*schema.Column{StatesColumns[2], StatesColumns[1]},
			},
		},
	}

	// CitiesColumns holds the columns for the "cities" table.
	CitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "state_id", Type: field.TypeUUID},
	}
	CitiesTable = &schema.Table{
		Name:       "cities",
		Columns:    CitiesColumns,
		PrimaryKey: []*schema.Column{CitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cities_states_cities",
				Columns:    []*schema.Column{CitiesColumns[2]},
				RefColumns: []*schema.Column{StatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "city_state_id_name",
				Unique:  true,
				Columns: []*schema.Column{CitiesColumns[2], CitiesColumns[1]},
			},
		},
	}

	// Tables holds all the tables in the schema, parents before children.
	Tables = []*schema.Table{
		UsersTable,
		ProfilesTable,
		JobCategoriesTable,
		JobsTable,
		ApplicationsTable,
		CompaniesTable,
		CountriesTable,
		StatesTable,
		CitiesTable,
	}
)

func init() {
	ProfilesTable.ForeignKeys[0].RefTable = UsersTable
	JobsTable.ForeignKeys[0].RefTable = JobCategoriesTable
	JobsTable.ForeignKeys[1].RefTable = UsersTable
	ApplicationsTable.ForeignKeys[0].RefTable = JobsTable
	ApplicationsTable.ForeignKeys[1].RefTable = UsersTable
	CompaniesTable.ForeignKeys[0].RefTable = UsersTable
	StatesTable.ForeignKeys[0].RefTable = CountriesTable
	CitiesTable.ForeignKeys[0].RefTable = StatesTable
}
