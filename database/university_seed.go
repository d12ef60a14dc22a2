package database

import "github.com/globaledge/api/model"

// UniversitySeedData returns the static university records migrated into the
// universityv2s collection. The migration endpoint upserts each by slug, so
// re-running is safe and edits here flow through on the next run.
func UniversitySeedData() []model.University {
	return []model.University{
		{
			Slug: "university-of-toronto", Name: "University of Toronto",
			Country: "Canada", City: "Toronto", Website: "https://www.utoronto.ca",
			Rankings: model.UniversityRankings{QSWorld: 25, Times: 21, National: 1},
			Fees:     model.UniversityFees{Currency: "CAD", Undergraduate: "58,000", Postgraduate: "45,000"},
			Scholarships: []model.Scholarship{
				{Name: "Lester B. Pearson International Scholarship", Amount: "Full tuition + residence", Eligibility: "International secondary school students"},
			},
			Programs: []string{"Computer Science", "Engineering", "Business", "Life Sciences"},
			IsActive: true, Featured: true,
		},
		{
			Slug: "university-of-british-columbia", Name: "University of British Columbia",
			Country: "Canada", City: "Vancouver", Website: "https://www.ubc.ca",
			Rankings: model.UniversityRankings{QSWorld: 38, Times: 41, National: 3},
			Fees:     model.UniversityFees{Currency: "CAD", Undergraduate: "45,000", Postgraduate: "35,000"},
			Scholarships: []model.Scholarship{
				{Name: "International Major Entrance Scholarship", Amount: "Up to 20,000 CAD", Eligibility: "Outstanding international students"},
			},
			Programs: []string{"Commerce", "Forestry", "Computer Science", "Media Studies"},
			IsActive: true, Featured: true,
		},
		{
			Slug: "university-of-manchester", Name: "University of Manchester",
			Country: "United Kingdom", City: "Manchester", Website: "https://www.manchester.ac.uk",
			Rankings: model.UniversityRankings{QSWorld: 34, Times: 53, National: 7},
			Fees:     model.UniversityFees{Currency: "GBP", Undergraduate: "26,000", Postgraduate: "24,000"},
			Scholarships: []model.Scholarship{
				{Name: "Global Futures Scholarship", Amount: "2,000-8,000 GBP", Eligibility: "International undergraduate applicants"},
			},
			Programs: []string{"Engineering", "Law", "Economics", "Pharmacy"},
			IsActive: true, Featured: false,
		},
		{
			Slug: "university-of-melbourne", Name: "University of Melbourne",
			Country: "Australia", City: "Melbourne", Website: "https://www.unimelb.edu.au",
			Rankings: model.UniversityRankings{QSWorld: 13, Times: 37, National: 1},
			Fees:     model.UniversityFees{Currency: "AUD", Undergraduate: "45,000", Postgraduate: "42,000"},
			Scholarships: []model.Scholarship{
				{Name: "Melbourne International Undergraduate Scholarship", Amount: "10,000 AUD - full fee remission", Eligibility: "High-achieving international students"},
			},
			Programs: []string{"Medicine", "Architecture", "Data Science", "Commerce"},
			IsActive: true, Featured: true,
		},
		{
			Slug: "monash-university", Name: "Monash University",
			Country: "Australia", City: "Melbourne", Website: "https://www.monash.edu",
			Rankings: model.UniversityRankings{QSWorld: 42, Times: 54, National: 2},
			Fees:     model.UniversityFees{Currency: "AUD", Undergraduate: "40,000", Postgraduate: "38,000"},
			Programs: []string{"Pharmacy", "Engineering", "IT", "Nursing"},
			IsActive: true, Featured: false,
		},
	}
}
