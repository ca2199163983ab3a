package catalog

import "github.com/ventiq/ventiq-terminal/pkg/models"

func sellerTutorials() []*models.Tutorial {
	return []*models.Tutorial{
		{
			Key:   "venta",
			Title: "Cómo realizar una venta",
			Steps: []models.Step{
				{
					Title: "Seleccionar productos",
					Body:  "Navega por las categorías y selecciona los productos que el cliente desea comprar.",
					Instructions: []string{
						"Abre la aplicación VentIQ Seller",
						"Selecciona una categoría de productos",
						"Busca el producto deseado",
						"Toca el producto para ver sus detalles",
						"Ajusta la cantidad y agrega al carrito",
					},
				},
				{
					Title: "Revisar el carrito",
					Body:  "Verifica que todos los productos y cantidades sean correctos antes de proceder al pago.",
					Instructions: []string{
						"Toca el ícono del carrito en la parte superior",
						"Revisa cada producto en la lista",
						"Modifica cantidades si es necesario",
						"Verifica el total de la compra",
						"Procede al checkout",
					},
				},
				{
					Title: "Procesar el pago",
					Body:  "Selecciona el método de pago y completa la transacción.",
					Instructions: []string{
						"Elige el método de pago (efectivo, tarjeta, etc.)",
						"Ingresa el monto recibido si es efectivo",
						"Calcula el cambio automáticamente",
						"Confirma el pago",
						"Genera el recibo de venta",
					},
				},
				{
					Title: "Finalizar la venta",
					Body:  "Completa la venta e imprime el ticket si es necesario.",
					Instructions: []string{
						"Confirma que el pago fue exitoso",
						"Imprime el ticket de venta",
						"Entrega el recibo al cliente",
						"La venta se registra automáticamente",
						"El inventario se actualiza en tiempo real",
					},
				},
			},
		},
		{
			Key:   "inventario",
			Title: "Consultar inventario",
			Steps: []models.Step{
				{
					Title: "Acceder al inventario",
					Body:  "Navega a la sección de inventario para ver el stock disponible.",
					Instructions: []string{
						"Abre el menú principal de la aplicación",
						`Selecciona "Inventario" o "Stock"`,
						"Espera a que cargue la información",
						"Verás una lista de todos los productos",
					},
				},
				{
					Title: "Buscar productos",
					Body:  "Utiliza los filtros y búsqueda para encontrar productos específicos.",
					Instructions: []string{
						"Usa la barra de búsqueda en la parte superior",
						"Filtra por categoría si es necesario",
						"Ordena por nombre, stock o precio",
						"Toca un producto para ver más detalles",
					},
				},
				{
					Title: "Verificar disponibilidad",
					Body:  "Revisa las cantidades disponibles y ubicaciones de los productos.",
					Instructions: []string{
						"Observa la cantidad disponible de cada producto",
						"Verifica en qué almacén se encuentra",
						"Nota los productos con stock bajo",
						"Reporta cualquier discrepancia encontrada",
					},
				},
			},
		},
		{
			Key:   "configuracion",
			Title: "Configurar la aplicación",
			Steps: []models.Step{
				{
					Title: "Acceder a configuración",
					Body:  "Abre el menú de configuración de la aplicación.",
					Instructions: []string{
						"Toca el ícono de menú (☰)",
						`Selecciona "Configuración" o "Ajustes"`,
						"Verás las diferentes opciones disponibles",
					},
				},
				{
					Title: "Configurar impresión",
					Body:  "Ajusta las opciones de impresión de tickets.",
					Instructions: []string{
						`Busca la sección "Impresión"`,
						"Habilita o deshabilita la impresión automática",
						"Configura la impresora si es necesario",
						"Prueba la impresión con un ticket de ejemplo",
					},
				},
				{
					Title: "Ajustar notificaciones",
					Body:  "Personaliza las notificaciones que recibes.",
					Instructions: []string{
						`Ve a la sección "Notificaciones"`,
						"Habilita las notificaciones importantes",
						"Configura los sonidos y vibraciones",
						"Ajusta la frecuencia de las alertas",
					},
				},
				{
					Title: "Configurar perfil",
					Body:  "Actualiza tu información personal y de trabajo.",
					Instructions: []string{
						`Accede a "Perfil de usuario"`,
						"Actualiza tu nombre y datos de contacto",
						"Verifica tu rol y permisos",
						"Cambia tu contraseña si es necesario",
					},
				},
				{
					Title: "Sincronización",
					Body:  "Configura la sincronización de datos.",
					Instructions: []string{
						`Ve a "Sincronización"`,
						"Verifica la conexión a internet",
						"Configura la sincronización automática",
						"Realiza una sincronización manual si es necesario",
					},
				},
			},
		},
		{
			Key:   "turnos",
			Title: "Gestión de Turnos",
			Steps: []models.Step{
				{
					Title: "Apertura de turno",
					Body:  "Inicia tu turno registrando el efectivo inicial.",
					Instructions: []string{
						"Abre VentIQ Seller",
						`Selecciona "Apertura de Turno"`,
						"Registra el dinero inicial",
						"Confirma la apertura",
					},
				},
				{
					Title: "Dashboard del turno",
					Body:  "Monitorea ventas y estado de caja durante el turno.",
					Instructions: []string{
						"Observa ventas realizadas",
						"Revisa transacciones",
						"Verifica totales del turno",
						"Monitorea el estado de caja",
					},
				},
				{
					Title: "Imprimir reporte de productos",
					Body:  "Genera un reporte de productos vendidos.",
					Instructions: []string{
						`Entra a "Reportes del Turno"`,
						`Selecciona "Productos Vendidos"`,
						"Revisa la lista",
						"Imprime si es necesario",
					},
				},
				{
					Title: "Preparar cierre",
					Body:  "Verifica totales y documentos antes de cerrar.",
					Instructions: []string{
						"Revisa ventas del turno",
						"Verifica totales de efectivo",
						"Cuenta dinero en caja",
						"Prepara documentos",
					},
				},
				{
					Title: "Cierre de turno",
					Body:  "Finaliza el turno registrando el cierre de caja.",
					Instructions: []string{
						`Selecciona "Cierre de Turno"`,
						"Ingresa el dinero final",
						"Verifica contra el sistema",
						"Confirma el cierre",
					},
				},
			},
		},
		{
			Key:   "egresos",
			Title: "Manejo de Egresos",
			Steps: []models.Step{
				{
					Title: "Acceder a egresos",
					Body:  "Ingresa a la sección para registrar salidas de dinero.",
					Instructions: []string{
						"Desde el menú principal",
						`Selecciona "Egresos" o "Gastos"`,
						`Elige "Nuevo Egreso"`,
						"Inicia el registro",
					},
				},
				{
					Title: "Registrar egreso parcial",
					Body:  "Registra una extracción parcial de efectivo.",
					Instructions: []string{
						"Selecciona tipo de egreso",
						"Ingresa el monto",
						"Especifica el motivo",
						"Agrega observaciones",
					},
				},
				{
					Title: "Confirmar egreso",
					Body:  "Finaliza y confirma la salida de dinero.",
					Instructions: []string{
						"Revisa la información",
						"Verifica el monto",
						"Confirma el egreso",
						"El saldo de caja se actualiza automáticamente",
					},
				},
			},
		},
	}
}
