package domain

// Schema defaults applied to a freshly created record.
const (
	DefaultTitle             = "About Us"
	DefaultSubtitle          = "Welcome to Kedai J.A"
	DefaultDescription       = "Tempor erat elitr rebum at clita. Diam dolor diam ipsum sit. Aliqu diam amet diam et eos erat ipsum et lorem et sit, sed stet lorem sit."
	DefaultSecondDescription = "Tempor erat elitr rebum at clita. Diam dolor diam ipsum sit. Aliqu diam amet diam et eos. Clita erat ipsum et lorem et sit, sed stet lorem sit clita duo justo magna dolore erat amet"
	DefaultYearsOfExperience = 7
	DefaultMasterChefs       = 25
)

// Copy shown by the UI when no record exists or it cannot be fetched.
const (
	FallbackDescriptionShort       = "Kedai J.A adalah destinasi kuliner yang menghadirkan cita rasa autentik Indonesia dengan sentuhan modern."
	FallbackSecondDescriptionShort = "Dengan pengalaman bertahun-tahun di industri kuliner, kami terus berinovasi untuk memberikan pengalaman dining yang tak terlupakan."
	FallbackDescriptionLong        = FallbackDescriptionShort + " Kami berkomitmen untuk menyajikan hidangan berkualitas tinggi dengan bahan-bahan segar pilihan."
	FallbackSecondDescriptionLong  = FallbackSecondDescriptionShort + " Setiap hidangan dibuat dengan penuh cinta dan keahlian oleh chef berpengalaman kami."
)

// Admin form copy.
const (
	MsgSaved          = "Data tentang kami berhasil disimpan"
	MsgGenericFailure = "Terjadi kesalahan"
	MsgAPIFailure     = "Something went wrong"
	MsgAddImageFailed = "failed to add image"
)
