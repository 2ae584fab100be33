package domain

// DefaultCustomers is the sample customer list used when nothing has been persisted yet.
func DefaultCustomers() []Customer {
	return []Customer{
		{RUT: "12.345.678-5", Name: "Juan", PaternalSurname: "Pérez", MaternalSurname: "González", Country: "Chile", Orders: 12, Frequent: true},
		{RUT: "9.876.543-3", Name: "María", PaternalSurname: "López", MaternalSurname: "Soto", Country: "Chile", Orders: 3, Frequent: false},
		{RUT: "15.432.198-0", Name: "Carlos", PaternalSurname: "Gómez", MaternalSurname: "Rivas", Country: "Chile", Orders: 8, Frequent: true},
		{RUT: "18.765.432-7", Name: "Pedro", PaternalSurname: "Sánchez", MaternalSurname: "Díaz", Country: "Perú", Orders: 6, Frequent: true},
		{RUT: "11.223.344-K", Name: "Lucía", PaternalSurname: "Rojas", MaternalSurname: "Fuentes", Country: "Chile", Orders: 15, Frequent: true},
	}
}
