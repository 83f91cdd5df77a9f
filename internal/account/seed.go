package account

// SeedAccounts returns the fixed demo roster. The slice is rebuilt on every
// call so callers cannot mutate the seed set.
func SeedAccounts() []Account {
	return []Account{
		{
			ID:       "seed-admin",
			Email:    "admin@greenwood.edu",
			Password: "admin123",
			Name:     "John Doe",
			Role:     RoleAdministrator,
			Avatar:   "JD",
		},
		{
			ID:       "seed-faculty",
			Email:    "prof.sharma@greenwood.edu",
			Password: "prof123",
			Name:     "Prof. Sharma",
			Role:     RoleFaculty,
			Avatar:   "PS",
		},
		{
			ID:       "seed-student",
			Email:    "student@university.edu",
			Password: "student123",
			Name:     "Aarav Sharma",
			Role:     RoleStudent,
			Avatar:   "AS",
		},
	}
}
