package refdata

func specialties() []Entry {
	return []Entry{
		{Value: "General_physician", Label: Label{En: "General Physician", Ar: "طبيب عام"}},
		{Value: "Pediatrician", Label: Label{En: "Pediatrician", Ar: "طبيب أطفال"}},
		{Value: "Gynecologist", Label: Label{En: "Gynecologist", Ar: "طبيب نساء وتوليد"}},
		{Value: "Dermatologist", Label: Label{En: "Dermatologist", Ar: "طبيب جلدية"}},
		{Value: "Cardiologist", Label: Label{En: "Cardiologist", Ar: "طبيب قلب"}},
		{Value: "Neurologist", Label: Label{En: "Neurologist", Ar: "طبيب أعصاب"}},
		{Value: "Orthopedic", Label: Label{En: "Orthopedic Surgeon", Ar: "جراح عظام"}},
		{Value: "Psychiatrist", Label: Label{En: "Psychiatrist", Ar: "طبيب نفسي"}},
		{Value: "Ophthalmologist", Label: Label{En: "Ophthalmologist", Ar: "طبيب عيون"}},
		{Value: "ENT", Label: Label{En: "ENT Specialist", Ar: "طبيب أنف وأذن وحنجرة"}},
		{Value: "Dentist", Label: Label{En: "Dentist", Ar: "طبيب أسنان"}},
		{Value: "Urologist", Label: Label{En: "Urologist", Ar: "طبيب مسالك بولية"}},
		{Value: "Oncologist", Label: Label{En: "Oncologist", Ar: "طبيب أورام"}},
		{Value: "Endocrinologist", Label: Label{En: "Endocrinologist", Ar: "طبيب غدد صماء"}},
		{Value: "Nephrologist", Label: Label{En: "Nephrologist", Ar: "طبيب كلى"}},
		{Value: "Gastroenterologist", Label: Label{En: "Gastroenterologist", Ar: "طبيب جهاز هضمي"}},
		{Value: "Pulmonologist", Label: Label{En: "Pulmonologist", Ar: "طبيب أمراض صدرية"}},
		{Value: "Rheumatologist", Label: Label{En: "Rheumatologist", Ar: "طبيب روماتيزم"}},
		{Value: "Hematologist", Label: Label{En: "Hematologist", Ar: "طبيب أمراض دم"}},
		{Value: "Allergist", Label: Label{En: "Allergist", Ar: "طبيب حساسية"}},
		{Value: "Surgeon", Label: Label{En: "Surgeon", Ar: "جراح"}},
		{Value: "Plastic_surgeon", Label: Label{En: "Plastic Surgeon", Ar: "جراح تجميل"}},
		{Value: "Radiologist", Label: Label{En: "Radiologist", Ar: "طبيب أشعة"}},
		{Value: "Pathologist", Label: Label{En: "Pathologist", Ar: "طبيب أمراض"}},
		{Value: "Anesthesiologist", Label: Label{En: "Anesthesiologist", Ar: "طبيب تخدير"}},
	}
}
