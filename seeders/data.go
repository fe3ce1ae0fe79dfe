package seeders

// Демо-данные для локальной разработки. Даты задаются смещением в днях
// от момента запуска, чтобы гарантии и возраст парка попадали во все корзины.

type departmentData struct {
	Name      string
	Manager   string
	Email     string
	Phone     string
	SubUnits  []string
	Budget    float64
	Employees int64
}

type equipmentData struct {
	Name               string
	Manufacturer       string
	Model              string
	TagNumber          string
	SerialNumber       string
	Status             string
	DepartmentName     string // пусто = без отдела
	SubUnit            string
	PurchaseCost       float64 // 0 = стоимость неизвестна
	PurchaseDaysAgo    int     // 0 = дата покупки неизвестна
	WarrantyDaysAhead  int     // отрицательное = уже истекла
	HasWarranty        bool
	InstalledDaysAgo   int
}

type maintenanceData struct {
	EquipmentTag string
	Type         string
	Status       string
	Priority     string
	DaysAgo      int
	Cost         float64
	Technician   string
	Description  string
}

type activityData struct {
	Type           string
	Description    string
	DaysAgo        int
	EquipmentTag   string // пусто = активность без привязки
	DepartmentName string
}

var departmentsData = []departmentData{
	{Name: "Радиология", Manager: "Фарход Назаров", Email: "radiology@clinic.tj", Phone: "+992 37 221-11-01", SubUnits: []string{"МРТ", "КТ", "Рентген"}, Budget: 1_250_000, Employees: 18},
	{Name: "Лаборатория", Manager: "Мижгона Рахимова", Email: "lab@clinic.tj", Phone: "+992 37 221-11-02", SubUnits: []string{"Биохимия", "Гематология"}, Budget: 640_000, Employees: 12},
	{Name: "Реанимация", Manager: "Сухроб Каримов", Email: "icu@clinic.tj", Phone: "+992 37 221-11-03", SubUnits: []string{"Взрослая", "Детская"}, Budget: 980_000, Employees: 25},
	{Name: "Хирургия", Manager: "Дилноза Юсупова", Email: "surgery@clinic.tj", Phone: "+992 37 221-11-04", SubUnits: nil, Budget: 720_000, Employees: 15},
}

var equipmentsData = []equipmentData{
	{Name: "МРТ-сканер", Manufacturer: "Siemens", Model: "Magnetom Altea", TagNumber: "RAD-001", SerialNumber: "SN-MR-90011", Status: "operational", DepartmentName: "Радиология", SubUnit: "МРТ", PurchaseCost: 850_000, PurchaseDaysAgo: 900, WarrantyDaysAhead: 200, HasWarranty: true, InstalledDaysAgo: 870},
	{Name: "КТ-томограф", Manufacturer: "GE Healthcare", Model: "Revolution Ace", TagNumber: "RAD-002", SerialNumber: "SN-CT-41572", Status: "maintenance", DepartmentName: "Радиология", SubUnit: "КТ", PurchaseCost: 520_000, PurchaseDaysAgo: 1600, WarrantyDaysAhead: 20, HasWarranty: true, InstalledDaysAgo: 1570},
	{Name: "Рентген-аппарат", Manufacturer: "Philips", Model: "DuraDiagnost", TagNumber: "RAD-003", SerialNumber: "SN-XR-77120", Status: "operational", DepartmentName: "Радиология", PurchaseCost: 140_000, PurchaseDaysAgo: 3900, WarrantyDaysAhead: -700, HasWarranty: true, InstalledDaysAgo: 3850},
	{Name: "Биохимический анализатор", Manufacturer: "Roche", Model: "Cobas c303", TagNumber: "LAB-001", SerialNumber: "SN-BA-10034", Status: "operational", DepartmentName: "Лаборатория", SubUnit: "Биохимия", PurchaseCost: 95_000, PurchaseDaysAgo: 400, WarrantyDaysAhead: 75, HasWarranty: true, InstalledDaysAgo: 380},
	{Name: "Гематологический анализатор", Manufacturer: "Sysmex", Model: "XN-550", TagNumber: "LAB-002", SerialNumber: "SN-HA-22871", Status: "broken", DepartmentName: "Лаборатория", SubUnit: "Гематология", PurchaseCost: 60_000, PurchaseDaysAgo: 2100, WarrantyDaysAhead: -300, HasWarranty: true, InstalledDaysAgo: 2060},
	{Name: "Аппарат ИВЛ", Manufacturer: "Dräger", Model: "Evita V600", TagNumber: "ICU-001", SerialNumber: "SN-VN-55012", Status: "operational", DepartmentName: "Реанимация", SubUnit: "Взрослая", PurchaseCost: 78_000, PurchaseDaysAgo: 250, WarrantyDaysAhead: 480, HasWarranty: true, InstalledDaysAgo: 240},
	{Name: "Монитор пациента", Manufacturer: "Mindray", Model: "BeneVision N12", TagNumber: "ICU-002", SerialNumber: "SN-PM-80455", Status: "operational", DepartmentName: "Реанимация", SubUnit: "Детская", PurchaseCost: 14_500, PurchaseDaysAgo: 1200, WarrantyDaysAhead: 10, HasWarranty: true, InstalledDaysAgo: 1180},
	{Name: "Дефибриллятор", Manufacturer: "Zoll", Model: "R Series", TagNumber: "ICU-003", SerialNumber: "SN-DF-31209", Status: "retired", DepartmentName: "Реанимация", PurchaseCost: 22_000, PurchaseDaysAgo: 4300, WarrantyDaysAhead: -2500, HasWarranty: true, InstalledDaysAgo: 4250},
	{Name: "Хирургический лазер", Manufacturer: "Lumenis", Model: "Pulse 120H", TagNumber: "SUR-001", SerialNumber: "SN-SL-66701", Status: "operational", DepartmentName: "Хирургия", PurchaseCost: 130_000, PurchaseDaysAgo: 30, WarrantyDaysAhead: 1050, HasWarranty: true, InstalledDaysAgo: 20},
	{Name: "Электрохирургический блок", Manufacturer: "Erbe", Model: "VIO 3", TagNumber: "SUR-002", SerialNumber: "SN-EB-91844", Status: "operational", DepartmentName: "Хирургия"},
	{Name: "Переносной УЗИ", Manufacturer: "Samsung", Model: "HM70 EVO", TagNumber: "GEN-001", SerialNumber: "SN-US-12098", Status: "operational", PurchaseCost: 35_000, PurchaseDaysAgo: 700, WarrantyDaysAhead: 45, HasWarranty: true, InstalledDaysAgo: 690},
}

var maintenancesData = []maintenanceData{
	{EquipmentTag: "RAD-001", Type: "preventive", Status: "completed", Priority: "medium", DaysAgo: 15, Cost: 4_200, Technician: "Акмал Шарипов", Description: "Плановая проверка градиентных катушек"},
	{EquipmentTag: "RAD-002", Type: "repair", Status: "in-progress", Priority: "high", DaysAgo: 2, Cost: 11_800, Technician: "Акмал Шарипов", Description: "Замена рентгеновской трубки"},
	{EquipmentTag: "RAD-002", Type: "calibration", Status: "completed", Priority: "medium", DaysAgo: 95, Cost: 1_500, Technician: "Сервисный центр GE", Description: "Калибровка детекторов"},
	{EquipmentTag: "RAD-003", Type: "inspection", Status: "completed", Priority: "low", DaysAgo: 40, Technician: "Акмал Шарипов", Description: "Ежеквартальный осмотр"},
	{EquipmentTag: "LAB-001", Type: "preventive", Status: "completed", Priority: "medium", DaysAgo: 60, Cost: 800, Technician: "Roche Service", Description: "Замена реагентных линий"},
	{EquipmentTag: "LAB-002", Type: "repair", Status: "scheduled", Priority: "critical", DaysAgo: -5, Technician: "Sysmex Service", Description: "Диагностика блока подачи проб"},
	{EquipmentTag: "ICU-001", Type: "calibration", Status: "completed", Priority: "high", DaysAgo: 10, Cost: 950, Technician: "Бахтиёр Носиров", Description: "Поверка датчиков давления"},
	{EquipmentTag: "ICU-002", Type: "preventive", Status: "completed", Priority: "low", DaysAgo: 130, Cost: 300, Technician: "Бахтиёр Носиров", Description: "Чистка и обновление прошивки"},
	{EquipmentTag: "SUR-001", Type: "inspection", Status: "completed", Priority: "medium", DaysAgo: 7, Technician: "Lumenis Service", Description: "Входной контроль после установки"},
}

var activitiesData = []activityData{
	{Type: "maintenance", Description: "Завершено плановое обслуживание МРТ-сканера", DaysAgo: 15, EquipmentTag: "RAD-001", DepartmentName: "Радиология"},
	{Type: "status-change", Description: "КТ-томограф переведён в статус 'maintenance'", DaysAgo: 2, EquipmentTag: "RAD-002", DepartmentName: "Радиология"},
	{Type: "breakdown", Description: "Гематологический анализатор вышел из строя", DaysAgo: 6, EquipmentTag: "LAB-002", DepartmentName: "Лаборатория"},
	{Type: "installation", Description: "Установлен хирургический лазер", DaysAgo: 20, EquipmentTag: "SUR-001", DepartmentName: "Хирургия"},
	{Type: "audit", Description: "Проведена инвентаризация парка оборудования", DaysAgo: 30},
	{Type: "status-change", Description: "Дефибриллятор списан", DaysAgo: 90, EquipmentTag: "ICU-003", DepartmentName: "Реанимация"},
	{Type: "maintenance", Description: "Поверка датчиков аппарата ИВЛ", DaysAgo: 10, EquipmentTag: "ICU-001", DepartmentName: "Реанимация"},
}
