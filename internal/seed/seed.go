package seed

import (
	"log/slog"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/repository"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/utils"
)

var mockStaff = []domain.StaffMember{
	{ID: 1, Name: "Bia Silva", Specialty: "Cabeleireira Master", Color: "#0046FF", StartTime: "09:00", EndTime: "18:00", LunchStart: "12:00", LunchEnd: "13:00", IsActive: true},
	{ID: 2, Name: "Marco Vedo", Specialty: "Barbeiro", Color: "#10B981", StartTime: "08:00", EndTime: "17:00", LunchStart: "12:30", LunchEnd: "13:30", IsActive: true},
	{ID: 3, Name: "Duda Ramos", Specialty: "Manicure", Color: "#8B5CF6", StartTime: "10:00", EndTime: "19:00", LunchStart: "13:00", LunchEnd: "14:00", IsActive: false}, // 休假中
}

var mockServices = []domain.Service{
	{ID: 1, Name: "Corte Feminino", Category: "Cabelo", DurationMin: 60, PriceCents: 12000},
	{ID: 2, Name: "Barba Premium", Category: "Barbearia", DurationMin: 30, PriceCents: 6500},
	{ID: 3, Name: "Coloração Global", Category: "Cabelo", DurationMin: 120, PriceCents: 25000},
	{ID: 4, Name: "Manicure", Category: "Estética", DurationMin: 45, PriceCents: 4500},
}

var mockClients = []domain.Client{
	{ID: 1, Name: "Ricardo Almeida", Phone: "(11) 98877-6655"},
	{ID: 2, Name: "Carla Souza", Phone: "(11) 97766-5544"},
	{ID: 3, Name: "Marcos Pires", Phone: "(11) 96655-4433"},
	{ID: 4, Name: "Juliana Lima", Email: "juliana@example.com"},
}

type mockAppointment struct {
	staffID   int64
	clientID  int64
	serviceID int64
	startTime string
}

var mockAppointments = []mockAppointment{
	{staffID: 1, clientID: 1, serviceID: 1, startTime: "14:30"},
	{staffID: 2, clientID: 2, serviceID: 2, startTime: "15:15"},
	{staffID: 1, clientID: 3, serviceID: 3, startTime: "16:00"},
	{staffID: 2, clientID: 4, serviceID: 2, startTime: "10:00"},
}

// SeedMockData 写入演示用的员工、服务、客户，以及 date 当天的几条预约
func SeedMockData(r *repository.Repository, date string) error {
	for _, s := range mockStaff {
		if s.Initials == "" {
			s.Initials = utils.Initials(s.Name)
		}
		if err := r.CreateStaff(&s); err != nil {
			return err
		}
	}

	for _, s := range mockServices {
		if err := r.CreateService(&s); err != nil {
			return err
		}
	}

	for _, c := range mockClients {
		if err := r.CreateClient(&c); err != nil {
			return err
		}
	}

	for _, m := range mockAppointments {
		staff, err := r.GetStaffByID(m.staffID)
		if err != nil {
			return err
		}
		client, err := r.GetClientByID(m.clientID)
		if err != nil {
			return err
		}
		service, err := r.GetServiceByID(m.serviceID)
		if err != nil {
			return err
		}

		appt := &domain.Appointment{
			StaffID:     staff.ID,
			ClientID:    &client.ID,
			ClientName:  client.Name,
			ServiceID:   &service.ID,
			Service:     service.Name,
			Date:        date,
			StartTime:   m.startTime,
			DurationMin: service.DurationMin,
			Color:       staff.Color,
		}
		if err := utils.ValidateAppointmentWithStaff(appt, staff); err != nil {
			return err
		}
		if err := r.CreateAppointment(appt); err != nil {
			return err
		}
	}

	slog.Info("已写入演示数据", "staff", len(mockStaff), "services", len(mockServices), "clients", len(mockClients), "appointments", len(mockAppointments), "date", date)
	return nil
}
