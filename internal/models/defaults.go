package models

import "kedai/internal/domain"

// DefaultAboutUs returns a record populated with the schema defaults.
func DefaultAboutUs() *AboutUs {
	a := &AboutUs{
		Key:               domain.SingletonKey,
		Title:             domain.DefaultTitle,
		Subtitle:          domain.DefaultSubtitle,
		Description:       domain.DefaultDescription,
		SecondDescription: domain.DefaultSecondDescription,
		YearsOfExperience: domain.DefaultYearsOfExperience,
		MasterChefs:       domain.DefaultMasterChefs,
	}
	a.Images.Normalize()
	return a
}

// AdminFallback is what the edit form starts from when nothing is stored yet.
func AdminFallback() *AboutUs {
	return fallback(domain.FallbackDescriptionShort, domain.FallbackSecondDescriptionShort)
}

// DisplayFallback is rendered publicly when the record is missing (long copy)
// or could not be fetched (short copy).
func DisplayFallback(missing bool) *AboutUs {
	if missing {
		return fallback(domain.FallbackDescriptionLong, domain.FallbackSecondDescriptionLong)
	}
	return fallback(domain.FallbackDescriptionShort, domain.FallbackSecondDescriptionShort)
}

func fallback(desc, second string) *AboutUs {
	a := &AboutUs{
		Title:             domain.DefaultTitle,
		Subtitle:          domain.DefaultSubtitle,
		Description:       desc,
		SecondDescription: second,
		YearsOfExperience: domain.DefaultYearsOfExperience,
		MasterChefs:       domain.DefaultMasterChefs,
	}
	a.Images.Normalize()
	return a
}
