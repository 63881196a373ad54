package repositories

import (
	"sort"
	"sync"
	"time"

	"optica_backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// memoryCore is the shared state of the map-backed store: one map per
// entity and a single id counter spanning all of them. Every collection is
// guarded by the same RWMutex; records are copied in and out so callers
// never hold a reference into the maps.
type memoryCore struct {
	mu     sync.RWMutex
	nextID int64

	products           map[int64]models.Product
	patients           map[int64]models.Patient
	appointments       map[int64]models.Appointment
	salesOrders        map[int64]models.SalesOrder
	salesOrderItems    map[int64]models.SalesOrderItem
	purchaseOrders     map[int64]models.PurchaseOrder
	purchaseOrderItems map[int64]models.PurchaseOrderItem
	consignments       map[int64]models.Consignment
	prescriptions      map[int64]models.Prescription
	users              map[int64]models.User
}

// nextIdentifier returns a fresh id. Caller must hold the write lock.
func (c *memoryCore) nextIdentifier() int64 {
	id := c.nextID
	c.nextID++
	return id
}

// NewMemoryStore builds a Store backed by in-process maps. It seeds the
// default administrator account so a fresh deployment can log in.
func NewMemoryStore() *Store {
	core := &memoryCore{
		nextID:             1,
		products:           make(map[int64]models.Product),
		patients:           make(map[int64]models.Patient),
		appointments:       make(map[int64]models.Appointment),
		salesOrders:        make(map[int64]models.SalesOrder),
		salesOrderItems:    make(map[int64]models.SalesOrderItem),
		purchaseOrders:     make(map[int64]models.PurchaseOrder),
		purchaseOrderItems: make(map[int64]models.PurchaseOrderItem),
		consignments:       make(map[int64]models.Consignment),
		prescriptions:      make(map[int64]models.Prescription),
		users:              make(map[int64]models.User),
	}

	store := &Store{
		Products:           &memoryProducts{core: core},
		Patients:           &memoryPatients{core: core},
		Appointments:       &memoryAppointments{core: core},
		SalesOrders:        &memorySalesOrders{core: core},
		SalesOrderItems:    &memorySalesOrderItems{core: core},
		PurchaseOrders:     &memoryPurchaseOrders{core: core},
		PurchaseOrderItems: &memoryPurchaseOrderItems{core: core},
		Consignments:       &memoryConsignments{core: core},
		Prescriptions:      &memoryPrescriptions{core: core},
		Users:              &memoryUsers{core: core},
		Dashboard:          &memoryDashboard{core: core},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err == nil {
		_ = store.Users.Create(&models.User{
			Username:     "admin",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			Name:         "Administrador",
			Status:       "activo",
		})
	}

	return store
}

// sortedIDs returns map keys in ascending order so that List results come
// back in insertion order (ids grow monotonically).
func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// --- Products ---

type memoryProducts struct{ core *memoryCore }

func (r *memoryProducts) Create(product *models.Product) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	product.ID = r.core.nextIdentifier()
	r.core.products[product.ID] = *product
	return nil
}

func (r *memoryProducts) GetByID(id int64) (*models.Product, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	p, ok := r.core.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (r *memoryProducts) GetByCode(code string) (*models.Product, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	for _, p := range r.core.products {
		if p.Code == code {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryProducts) List() ([]models.Product, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	out := make([]models.Product, 0, len(r.core.products))
	for _, id := range sortedIDs(r.core.products) {
		out = append(out, r.core.products[id])
	}
	return out, nil
}

func (r *memoryProducts) Update(product *models.Product) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.products[product.ID]; !ok {
		return ErrNotFound
	}
	r.core.products[product.ID] = *product
	return nil
}

func (r *memoryProducts) Delete(id int64) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.core.products, id)
	return nil
}

// --- Patients ---

type memoryPatients struct{ core *memoryCore }

func (r *memoryPatients) Create(patient *models.Patient) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	patient.ID = r.core.nextIdentifier()
	r.core.patients[patient.ID] = *patient
	return nil
}

func (r *memoryPatients) GetByID(id int64) (*models.Patient, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	p, ok := r.core.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (r *memoryPatients) List() ([]models.Patient, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	out := make([]models.Patient, 0, len(r.core.patients))
	for _, id := range sortedIDs(r.core.patients) {
		out = append(out, r.core.patients[id])
	}
	return out, nil
}

func (r *memoryPatients) Update(patient *models.Patient) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.patients[patient.ID]; !ok {
		return ErrNotFound
	}
	r.core.patients[patient.ID] = *patient
	return nil
}

func (r *memoryPatients) Delete(id int64) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.patients[id]; !ok {
		return ErrNotFound
	}
	delete(r.core.patients, id)
	return nil
}

// --- Appointments ---

type memoryAppointments struct{ core *memoryCore }

func (r *memoryAppointments) Create(appointment *models.Appointment) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	appointment.ID = r.core.nextIdentifier()
	r.core.appointments[appointment.ID] = *appointment
	return nil
}

func (r *memoryAppointments) GetByID(id int64) (*models.Appointment, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	a, ok := r.core.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := a
	return &cp, nil
}

func (r *memoryAppointments) List() ([]models.Appointment, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	out := make([]models.Appointment, 0, len(r.core.appointments))
	for _, id := range sortedIDs(r.core.appointments) {
		out = append(out, r.core.appointments[id])
	}
	return out, nil
}

func (r *memoryAppointments) Update(appointment *models.Appointment) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.appointments[appointment.ID]; !ok {
		return ErrNotFound
	}
	r.core.appointments[appointment.ID] = *appointment
	return nil
}

func (r *memoryAppointments) Delete(id int64) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.appointments[id]; !ok {
		return ErrNotFound
	}
	delete(r.core.appointments, id)
	return nil
}

// --- Sales orders ---

type memorySalesOrders struct{ core *memoryCore }

func (r *memorySalesOrders) Create(order *models.SalesOrder) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	order.ID = r.core.nextIdentifier()
	r.core.salesOrders[order.ID] = *order
	return nil
}

func (r *memorySalesOrders) GetByID(id int64) (*models.SalesOrder, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	o, ok := r.core.salesOrders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := o
	return &cp, nil
}

func (r *memorySalesOrders) GetByOrderNumber(orderNumber string) (*models.SalesOrder, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	for _, o := range r.core.salesOrders {
		if o.OrderNumber == orderNumber {
			cp := o
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memorySalesOrders) List() ([]models.SalesOrder, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	out := make([]models.SalesOrder, 0, len(r.core.salesOrders))
	for _, id := range sortedIDs(r.core.salesOrders) {
		out = append(out, r.core.salesOrders[id])
	}
	return out, nil
}

func (r *memorySalesOrders) Update(order *models.SalesOrder) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.salesOrders[order.ID]; !ok {
		return ErrNotFound
	}
	r.core.salesOrders[order.ID] = *order
	return nil
}

func (r *memorySalesOrders) Delete(id int64) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.salesOrders[id]; !ok {
		return ErrNotFound
	}
	delete(r.core.salesOrders, id)
	return nil
}

// --- Sales order items ---

type memorySalesOrderItems struct{ core *memoryCore }

func (r *memorySalesOrderItems) Create(item *models.SalesOrderItem) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	item.ID = r.core.nextIdentifier()
	r.core.salesOrderItems[item.ID] = *item
	return nil
}

func (r *memorySalesOrderItems) GetByID(id int64) (*models.SalesOrderItem, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	it, ok := r.core.salesOrderItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := it
	return &cp, nil
}

func (r *memorySalesOrderItems) ListByOrder(salesOrderID int64) ([]models.SalesOrderItem, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	out := make([]models.SalesOrderItem, 0)
	for _, id := range sortedIDs(r.core.salesOrderItems) {
		if it := r.core.salesOrderItems[id]; it.SalesOrderID == salesOrderID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memorySalesOrderItems) Delete(id int64) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.salesOrderItems[id]; !ok {
		return ErrNotFound
	}
	delete(r.core.salesOrderItems, id)
	return nil
}

// --- Purchase orders ---

type memoryPurchaseOrders struct{ core *memoryCore }

func (r *memoryPurchaseOrders) Create(order *models.PurchaseOrder) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	order.ID = r.core.nextIdentifier()
	r.core.purchaseOrders[order.ID] = *order
	return nil
}

func (r *memoryPurchaseOrders) GetByID(id int64) (*models.PurchaseOrder, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	o, ok := r.core.purchaseOrders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := o
	return &cp, nil
}

func (r *memoryPurchaseOrders) GetByOrderNumber(orderNumber string) (*models.PurchaseOrder, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	for _, o := range r.core.purchaseOrders {
		if o.OrderNumber == orderNumber {
			cp := o
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryPurchaseOrders) List() ([]models.PurchaseOrder, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	out := make([]models.PurchaseOrder, 0, len(r.core.purchaseOrders))
	for _, id := range sortedIDs(r.core.purchaseOrders) {
		out = append(out, r.core.purchaseOrders[id])
	}
	return out, nil
}

func (r *memoryPurchaseOrders) Update(order *models.PurchaseOrder) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.purchaseOrders[order.ID]; !ok {
		return ErrNotFound
	}
	r.core.purchaseOrders[order.ID] = *order
	return nil
}

func (r *memoryPurchaseOrders) Delete(id int64) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.purchaseOrders[id]; !ok {
		return ErrNotFound
	}
	delete(r.core.purchaseOrders, id)
	return nil
}

// --- Purchase order items ---

type memoryPurchaseOrderItems struct{ core *memoryCore }

func (r *memoryPurchaseOrderItems) Create(item *models.PurchaseOrderItem) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	item.ID = r.core.nextIdentifier()
	r.core.purchaseOrderItems[item.ID] = *item
	return nil
}

func (r *memoryPurchaseOrderItems) GetByID(id int64) (*models.PurchaseOrderItem, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	it, ok := r.core.purchaseOrderItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := it
	return &cp, nil
}

func (r *memoryPurchaseOrderItems) ListByOrder(purchaseOrderID int64) ([]models.PurchaseOrderItem, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	out := make([]models.PurchaseOrderItem, 0)
	for _, id := range sortedIDs(r.core.purchaseOrderItems) {
		if it := r.core.purchaseOrderItems[id]; it.PurchaseOrderID == purchaseOrderID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memoryPurchaseOrderItems) Delete(id int64) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.purchaseOrderItems[id]; !ok {
		return ErrNotFound
	}
	delete(r.core.purchaseOrderItems, id)
	return nil
}

// --- Consignments ---

type memoryConsignments struct{ core *memoryCore }

func (r *memoryConsignments) Create(consignment *models.Consignment) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	consignment.ID = r.core.nextIdentifier()
	r.core.consignments[consignment.ID] = *consignment
	return nil
}

func (r *memoryConsignments) GetByID(id int64) (*models.Consignment, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	cg, ok := r.core.consignments[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := cg
	return &cp, nil
}

func (r *memoryConsignments) List() ([]models.Consignment, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	out := make([]models.Consignment, 0, len(r.core.consignments))
	for _, id := range sortedIDs(r.core.consignments) {
		out = append(out, r.core.consignments[id])
	}
	return out, nil
}

func (r *memoryConsignments) Update(consignment *models.Consignment) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.consignments[consignment.ID]; !ok {
		return ErrNotFound
	}
	r.core.consignments[consignment.ID] = *consignment
	return nil
}

func (r *memoryConsignments) Delete(id int64) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.consignments[id]; !ok {
		return ErrNotFound
	}
	delete(r.core.consignments, id)
	return nil
}

// --- Prescriptions ---

type memoryPrescriptions struct{ core *memoryCore }

func (r *memoryPrescriptions) Create(prescription *models.Prescription) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	prescription.ID = r.core.nextIdentifier()
	r.core.prescriptions[prescription.ID] = *prescription
	return nil
}

func (r *memoryPrescriptions) GetByID(id int64) (*models.Prescription, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	p, ok := r.core.prescriptions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (r *memoryPrescriptions) List() ([]models.Prescription, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	out := make([]models.Prescription, 0, len(r.core.prescriptions))
	for _, id := range sortedIDs(r.core.prescriptions) {
		out = append(out, r.core.prescriptions[id])
	}
	return out, nil
}

func (r *memoryPrescriptions) Update(prescription *models.Prescription) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.prescriptions[prescription.ID]; !ok {
		return ErrNotFound
	}
	r.core.prescriptions[prescription.ID] = *prescription
	return nil
}

func (r *memoryPrescriptions) Delete(id int64) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.prescriptions[id]; !ok {
		return ErrNotFound
	}
	delete(r.core.prescriptions, id)
	return nil
}

// --- Users ---

type memoryUsers struct{ core *memoryCore }

func (r *memoryUsers) Create(user *models.User) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	user.ID = r.core.nextIdentifier()
	r.core.users[user.ID] = *user
	return nil
}

func (r *memoryUsers) GetByID(id int64) (*models.User, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	u, ok := r.core.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (r *memoryUsers) GetByUsername(username string) (*models.User, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	for _, u := range r.core.users {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUsers) List() ([]models.User, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()
	out := make([]models.User, 0, len(r.core.users))
	for _, id := range sortedIDs(r.core.users) {
		out = append(out, r.core.users[id])
	}
	return out, nil
}

func (r *memoryUsers) Update(user *models.User) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.users[user.ID]; !ok {
		return ErrNotFound
	}
	r.core.users[user.ID] = *user
	return nil
}

func (r *memoryUsers) Delete(id int64) error {
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if _, ok := r.core.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.core.users, id)
	return nil
}

// --- Dashboard ---

type memoryDashboard struct{ core *memoryCore }

// Summary computes the four dashboard metrics in one pass over the
// relevant collections. Today is the process-local calendar date.
func (r *memoryDashboard) Summary() (*models.DashboardSummary, error) {
	r.core.mu.RLock()
	defer r.core.mu.RUnlock()

	summary := &models.DashboardSummary{}
	for _, o := range r.core.salesOrders {
		summary.TotalSales += o.Total
		if o.Status == models.SalesOrderStatusNew || o.Status == models.SalesOrderStatusInProgress {
			summary.PendingOrders++
		}
	}
	for _, cg := range r.core.consignments {
		if cg.Status == models.ConsignmentStatusActive {
			summary.ActiveConsignments++
		}
	}
	today := time.Now().Format("2006-01-02")
	for _, a := range r.core.appointments {
		if a.Date == today && a.Status != models.AppointmentStatusCancelled {
			summary.TodayAppointments++
		}
	}
	return summary, nil
}
