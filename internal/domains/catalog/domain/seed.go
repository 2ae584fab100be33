package domain

// DefaultProducts is the catalog used when nothing has been persisted yet.
func DefaultProducts() []Product {
	return []Product{
		{ID: 1, Name: "Manzanas Fuji", Category: "Frutas", Description: "Manzanas crujientes y dulces, cultivadas en el valle central.", Price: 1200, Stock: 150, Origin: "Chile", Image: "/img/manzanas-fuji.jpg"},
		{ID: 2, Name: "Naranjas Valencia", Category: "Frutas", Description: "Jugosas y ricas en vitamina C, ideales para jugo.", Price: 1000, Stock: 200, Origin: "Chile", Image: "/img/naranjas.jpg"},
		{ID: 3, Name: "Plátanos Cavendish", Category: "Frutas", Description: "Plátanos maduros, fuente natural de energía.", Price: 800, Stock: 250, Origin: "Ecuador", Image: "/img/platanos.jpg"},
		{ID: 4, Name: "Zanahorias Orgánicas", Category: "Verduras", Description: "Zanahorias cultivadas sin pesticidas.", Price: 900, Stock: 18, Origin: "Chile", Image: "/img/zanahorias.jpg"},
		{ID: 5, Name: "Espinacas Frescas", Category: "Verduras", Description: "Bolsa de 500 g de espinacas frescas.", Price: 700, Stock: 8, Origin: "Chile", Image: "/img/espinacas.jpg"},
		{ID: 6, Name: "Pimientos Tricolores", Category: "Verduras", Description: "Pimientos rojos, amarillos y verdes.", Price: 1500, Stock: 120, Origin: "Chile", Image: "/img/pimientos.jpg"},
		{ID: 7, Name: "Miel Orgánica", Category: "Orgánicos", Description: "Miel pura de apicultores locales.", Price: 5000, Stock: 10, Origin: "Chile", Image: "/img/miel.jpg"},
		{ID: 8, Name: "Quinoa Orgánica", Category: "Orgánicos", Description: "Quinoa real en paquete de 1 kg.", Price: 12990, Stock: 45, Origin: "Perú", Image: "/img/quinoa.jpg"},
		{ID: 9, Name: "Leche Entera", Category: "Lácteos", Description: "Leche fresca de vacas de libre pastoreo.", Price: 1100, Stock: 0, Origin: "Chile", Image: "/img/leche.jpg"},
	}
}
