package refdata

func governorates() []Entry {
	return []Entry{
		{Value: "cairo", Label: Label{En: "Cairo", Ar: "القاهرة"}},
		{Value: "giza", Label: Label{En: "Giza", Ar: "الجيزة"}},
		{Value: "alexandria", Label: Label{En: "Alexandria", Ar: "الإسكندرية"}},
		{Value: "dakahlia", Label: Label{En: "Dakahlia", Ar: "الدقهلية"}},
		{Value: "sharqia", Label: Label{En: "Sharqia", Ar: "الشرقية"}},
		{Value: "gharbia", Label: Label{En: "Gharbia", Ar: "الغربية"}},
		{Value: "monufia", Label: Label{En: "Monufia", Ar: "المنوفية"}},
		{Value: "qalyubia", Label: Label{En: "Qalyubia", Ar: "القليوبية"}},
		{Value: "beheira", Label: Label{En: "Beheira", Ar: "البحيرة"}},
		{Value: "kafr_el_sheikh", Label: Label{En: "Kafr El-Sheikh", Ar: "كفر الشيخ"}},
		{Value: "fayoum", Label: Label{En: "Fayoum", Ar: "الفيوم"}},
		{Value: "bani_suef", Label: Label{En: "Bani Suef", Ar: "بني سويف"}},
		{Value: "minya", Label: Label{En: "Minya", Ar: "المنيا"}},
		{Value: "assiut", Label: Label{En: "Assiut", Ar: "أسيوط"}},
		{Value: "sohag", Label: Label{En: "Sohag", Ar: "سوهاج"}},
		{Value: "qena", Label: Label{En: "Qena", Ar: "قنا"}},
		{Value: "luxor", Label: Label{En: "Luxor", Ar: "الأقصر"}},
		{Value: "aswan", Label: Label{En: "Aswan", Ar: "أسوان"}},
		{Value: "red_sea", Label: Label{En: "Red Sea", Ar: "البحر الأحمر"}},
		{Value: "new_valley", Label: Label{En: "New Valley", Ar: "الوادي الجديد"}},
		{Value: "matrouh", Label: Label{En: "Matrouh", Ar: "مطروح"}},
		{Value: "north_sinai", Label: Label{En: "North Sinai", Ar: "شمال سيناء"}},
		{Value: "south_sinai", Label: Label{En: "South Sinai", Ar: "جنوب سيناء"}},
		{Value: "ismailia", Label: Label{En: "Ismailia", Ar: "الإسماعيلية"}},
		{Value: "suez", Label: Label{En: "Suez", Ar: "السويس"}},
		{Value: "port_said", Label: Label{En: "Port Said", Ar: "بورسعيد"}},
		{Value: "damietta", Label: Label{En: "Damietta", Ar: "دمياط"}},
	}
}
